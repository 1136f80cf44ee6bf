package main

import (
	"VCS_Node_Automation/internal/automation-service/alert"
	"VCS_Node_Automation/internal/automation-service/api/handler"
	"VCS_Node_Automation/internal/automation-service/api/routes"
	"VCS_Node_Automation/internal/automation-service/config"
	"VCS_Node_Automation/internal/automation-service/loadbalancer"
	"VCS_Node_Automation/internal/automation-service/notifier"
	"VCS_Node_Automation/internal/automation-service/repository"
	"VCS_Node_Automation/internal/automation-service/rotation"
	"VCS_Node_Automation/internal/automation-service/service"
	"VCS_Node_Automation/internal/automation-service/webhook"
	"VCS_Node_Automation/pkg/infra"
	"VCS_Node_Automation/pkg/logger"
	"VCS_Node_Automation/pkg/mail"
	"VCS_Node_Automation/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	defer fileSyncer.Close()
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, "automation-service", fileSyncer)
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	//set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	// set up monitor restarter
	var restarter notifier.Restarter
	switch appConfig.Monitor.RestartMode {
	case config.RestartModeKafka:
		kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Monitor.KafkaTopic)
		defer kafkaWriter.Close()
		restarter = notifier.NewKafkaRestarter(kafkaWriter)
	case config.RestartModeRedis:
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host: appConfig.Redis.Host,
			Port: appConfig.Redis.Port,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		zapLogger.Info("connected to redis successfully")
		defer redisClient.Close()
		restarter = notifier.NewRedisRestarter(redisClient, appConfig.Monitor.RedisChannel)
	default:
		restarter, err = notifier.NewExecRestarter(appConfig.Monitor.RestartCommand)
		if err != nil {
			zapLogger.Fatal("failed to create monitor restarter", zap.Error(err))
		}
	}
	monitorNotifier := notifier.NewNotifier(restarter, notifier.Config{
		MaxRetries:     appConfig.Monitor.MaxRetries,
		InitialBackoff: appConfig.Monitor.InitialBackoff,
		RestartTimeout: appConfig.Monitor.RestartTimeout,
	}, zapLogger)
	monitorNotifier.Start()
	defer monitorNotifier.Stop()

	// set up dependencies
	locationRepo := repository.NewLocationRepository(db)
	chainRepo := repository.NewChainRepository(db)
	hostRepo := repository.NewHostRepository(db)
	nodeRepo := repository.NewNodeRepository(db)
	webhookRepo := repository.NewWebhookRepository(db)
	rotationEventRepo := repository.NewRotationEventRepository(esClient)
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = rotationEventRepo.EnsureIndex(indexCtx)
	indexCancel()
	if err != nil {
		zapLogger.Fatal("failed to create rotation event index", zap.Error(err))
	}
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)

	alertChannel := alert.NewChannel(alert.Config{
		InfoWebhookURL:   appConfig.Alert.InfoWebhookURL,
		ErrorWebhookURL:  appConfig.Alert.ErrorWebhookURL,
		AdminMailAddress: appConfig.Mail.AdminMailAddress,
		RequestTimeout:   appConfig.Alert.RequestTimeout,
	}, webhookRepo, mailSender, zapLogger)
	lbClient := loadbalancer.NewDataPlaneClient(loadbalancer.Config{
		Port:           appConfig.LoadBalancer.DataPlanePort,
		User:           appConfig.LoadBalancer.User,
		Password:       appConfig.LoadBalancer.Password,
		RequestTimeout: appConfig.LoadBalancer.RequestTimeout,
		MaxRetries:     appConfig.LoadBalancer.MaxRetries,
		InitialBackoff: appConfig.LoadBalancer.InitialBackoff,
	})
	rotationController := rotation.NewRotationController(lbClient, alertChannel, zapLogger, appConfig.LoadBalancer.DestinationOverride())
	webhookRegistrar := webhook.NewDiscordRegistrar(webhook.Config{
		APIURL:         appConfig.Discord.APIURL,
		BotToken:       appConfig.Discord.BotToken,
		ChannelID:      appConfig.Discord.ChannelID,
		RequestTimeout: appConfig.Alert.RequestTimeout,
	}, webhookRepo, zapLogger)

	automationService := service.NewAutomationService(
		nodeRepo,
		hostRepo,
		chainRepo,
		locationRepo,
		rotationEventRepo,
		rotationController,
		monitorNotifier,
		webhookRegistrar,
		alertChannel,
		mailSender,
		zapLogger,
	)
	topologyService := service.NewTopologyService(locationRepo, chainRepo, monitorNotifier)

	handlerLogger := handler.NewLogger(zapLogger)
	hostHandler := handler.NewHostHandler(automationService, handlerLogger)
	nodeHandler := handler.NewNodeHandler(automationService, handlerLogger)
	rotationHandler := handler.NewRotationHandler(automationService, handlerLogger)
	topologyHandler := handler.NewTopologyHandler(topologyService, handlerLogger)

	m := middleware.NewAuthMiddleware()

	// Create cronjob for rotation report
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Report.Schedule, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 2*time.Minute)
		zapLogger.Info("cronjob called")
		e := automationService.ReportRotationStatus(ctx2, appConfig.Mail.AdminMailAddress)
		cancel2()
		if e != nil {
			zapLogger.Error("failed to generate rotation report", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for rotation report", zap.Error(err))
	}
	cronJob.Start()
	defer cronJob.Stop()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.SetUpTopologyRoutes(r, topologyHandler, m)
	routes.SetUpHostRoutes(r, hostHandler, m)
	routes.SetUpNodeRoutes(r, nodeHandler, m)
	routes.SetUpRotationRoutes(r, rotationHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
