package services

import (
	"github.com/tastetrack/ordering/models"
)

// StepState classifies one pipeline step relative to an order's current
// status.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepUpcoming  StepState = "upcoming"
)

var stepLabels = map[models.OrderStatus]string{
	models.StatusPending:        "Order Placed",
	models.StatusConfirmed:      "Order Confirmed",
	models.StatusPreparing:      "Preparing Food",
	models.StatusOutForDelivery: "Out for Delivery",
	models.StatusDelivered:      "Delivered",
}

// TrackingStep is one row of the tracking display.
type TrackingStep struct {
	Status models.OrderStatus `json:"status"`
	Label  string             `json:"label"`
	State  StepState          `json:"state"`
}

// OrderTimeline is what the tracking view renders: the five pipeline steps,
// or a bare cancelled flag when the order took the side-exit.
type OrderTimeline struct {
	OrderNumber string             `json:"orderNumber"`
	Status      models.OrderStatus `json:"status"`
	Cancelled   bool               `json:"cancelled"`
	Steps       []TrackingStep     `json:"steps,omitempty"`
}

// Timeline maps an order's last-fetched status onto the pipeline: steps
// before the current index are completed, the step at the index is current,
// later steps are upcoming. Cancelled is rendered as a distinct terminal
// state with no pipeline placement. The second return is false for a status
// the pipeline does not know.
func Timeline(order *models.Order) (*OrderTimeline, bool) {
	if order.Status == models.StatusCancelled {
		return &OrderTimeline{
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
			Cancelled:   true,
		}, true
	}

	current, ok := models.PipelineIndex(order.Status)
	if !ok {
		return nil, false
	}

	steps := make([]TrackingStep, 0, len(models.StatusPipeline))
	for i, status := range models.StatusPipeline {
		state := StepUpcoming
		switch {
		case i < current:
			state = StepCompleted
		case i == current:
			state = StepCurrent
		}
		steps = append(steps, TrackingStep{
			Status: status,
			Label:  stepLabels[status],
			State:  state,
		})
	}

	return &OrderTimeline{
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Steps:       steps,
	}, true
}
