package service

import (
	"VCS_Node_Automation/internal/automation-service/model"
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"
)

type rotationReport struct {
	TotalNodes        int
	UnmanagedNodes    int
	OnlineNodes       int
	OfflineNodes      int
	InconsistentNames []string
	FailedNodes       []string
	OfflineNames      []string
}

func (a *automationService) ReportRotationStatus(ctx context.Context, mail string) error {
	nodes, err := a.nodeRepository.GetNodes(ctx)
	if err != nil {
		return fmt.Errorf("AutomationService.ReportRotationStatus: %w", err)
	}
	report := rotationReport{TotalNodes: len(nodes)}
	for _, node := range nodes {
		if !node.HaProxy || len(node.LoadBalancers) == 0 {
			report.UnmanagedNodes++
			continue
		}
		status, err := a.rotationController.GetStatus(ctx, node.RotationTarget(false))
		if err != nil {
			a.logger.Warn("rotation status unavailable for report", zap.String("node_id", node.ID), zap.Error(err))
			report.FailedNodes = append(report.FailedNodes, node.Name)
			continue
		}
		switch status {
		case model.LoadBalancerStatusOnline:
			report.OnlineNodes++
		case model.LoadBalancerStatusOffline:
			report.OfflineNodes++
			report.OfflineNames = append(report.OfflineNames, node.Name)
		default:
			report.InconsistentNames = append(report.InconsistentNames, node.Name)
		}
	}

	subject := fmt.Sprintf("Rotation Status Report %s", time.Now().UTC().Format(time.DateOnly))
	err = a.mailSender.SendMail([]string{mail}, subject, generateReportHTMLBody(report), generateReportTextBody(report), nil)
	if err != nil {
		return fmt.Errorf("AutomationService.ReportRotationStatus: %w", err)
	}
	return nil
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func generateReportTextBody(r rotationReport) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Nodes: %d\n"+
			"Not Managed: %d\n"+
			"In Rotation: %d\n"+
			"Out Of Rotation: %d\n"+
			"Load Balancers Disagree: %d\n"+
			"Status Unavailable: %d\n\n"+
			"Out of rotation: %s\n"+
			"Disagreeing: %s\n"+
			"Unavailable: %s",
		r.TotalNodes,
		r.UnmanagedNodes,
		r.OnlineNodes,
		r.OfflineNodes,
		len(r.InconsistentNames),
		len(r.FailedNodes),
		listOrNone(r.OfflineNames),
		listOrNone(r.InconsistentNames),
		listOrNone(r.FailedNodes),
	)
}

func generateReportHTMLBody(r rotationReport) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Nodes:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Not Managed:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">In Rotation:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Out Of Rotation:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d (%s)</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Load Balancers Disagree:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d (%s)</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Status Unavailable:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d (%s)</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		r.TotalNodes,
		r.UnmanagedNodes,
		r.OnlineNodes,
		r.OfflineNodes, html.EscapeString(listOrNone(r.OfflineNames)),
		len(r.InconsistentNames), html.EscapeString(listOrNone(r.InconsistentNames)),
		len(r.FailedNodes), html.EscapeString(listOrNone(r.FailedNodes)),
	)
}
