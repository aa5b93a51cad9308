package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/tastetrack/ordering/hub"
	"github.com/tastetrack/ordering/models"
	"github.com/tastetrack/ordering/utils"
)

// TrackerMetrics counts what the monitor has seen since startup.
type TrackerMetrics struct {
	PollCycles    int64
	OrdersPolled  int64
	StatusChanges int64
	SkippedSteps  int64
	PollErrors    int64
}

// StatusMonitor polls the order service for every locally mirrored order
// that has not reached a terminal status, and broadcasts observed changes.
// The server stays authoritative: whatever status it reports is recorded,
// even when the jump is not a legal single step, but such jumps are counted
// and logged for diagnostics.
type StatusMonitor struct {
	db       *gorm.DB
	orders   *OrderServiceClient
	hub      *hub.StatusHub
	Interval time.Duration

	mu      sync.Mutex
	metrics TrackerMetrics
	stop    chan struct{}
}

func NewStatusMonitor(db *gorm.DB, orders *OrderServiceClient, statusHub *hub.StatusHub) *StatusMonitor {
	return &StatusMonitor{
		db:       db,
		orders:   orders,
		hub:      statusHub,
		Interval: 15 * time.Second,
		stop:     make(chan struct{}),
	}
}

// Start launches the polling loop.
func (m *StatusMonitor) Start() {
	go m.loop()
	utils.InfoLogger.Println("Order status monitor started")
}

// Stop ends the polling loop.
func (m *StatusMonitor) Stop() {
	close(m.stop)
}

func (m *StatusMonitor) loop() {
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.PollOnce(context.Background())
		}
	}
}

// PollOnce fetches the current status of every live order and records
// changes. Exported so a fetch can also be forced on demand.
func (m *StatusMonitor) PollOnce(ctx context.Context) {
	m.mu.Lock()
	m.metrics.PollCycles++
	m.mu.Unlock()

	// Orders placed with a credential are only visible to their owner, and
	// the monitor holds no credential; those refresh when the owner fetches
	// them instead of failing every cycle here.
	var live []models.Order
	terminal := []models.OrderStatus{models.StatusDelivered, models.StatusCancelled}
	if err := m.db.Where("status NOT IN ? AND authenticated = ?", terminal, false).Find(&live).Error; err != nil {
		utils.ErrorLogger.Printf("Status monitor query failed: %v", err)
		return
	}

	for i := range live {
		m.pollOrder(ctx, &live[i])
	}
}

func (m *StatusMonitor) pollOrder(ctx context.Context, local *models.Order) {
	m.mu.Lock()
	m.metrics.OrdersPolled++
	m.mu.Unlock()

	remote, err := m.orders.GetOrder(ctx, fmt.Sprintf("%d", local.ID), "")
	if err != nil {
		m.mu.Lock()
		m.metrics.PollErrors++
		m.mu.Unlock()
		utils.ErrorLogger.Printf("Polling order %s failed: %v", local.OrderNumber, err)
		return
	}

	if remote.Status == local.Status {
		return
	}
	if !remote.Status.IsValid() {
		utils.ErrorLogger.Printf("Order %s reported unknown status %q, ignoring", local.OrderNumber, remote.Status)
		return
	}
	if !models.CanTransition(local.Status, remote.Status) {
		// A poll can miss intermediate steps, so this is recorded but the
		// server's value still wins.
		m.mu.Lock()
		m.metrics.SkippedSteps++
		m.mu.Unlock()
		utils.InfoLogger.Printf("Order %s jumped %s -> %s between polls", local.OrderNumber, local.Status, remote.Status)
	}

	local.Status = remote.Status
	local.EstimatedDelivery = remote.EstimatedDelivery
	if err := m.db.Save(local).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to record status of order %s: %v", local.OrderNumber, err)
		return
	}

	m.mu.Lock()
	m.metrics.StatusChanges++
	m.mu.Unlock()

	utils.InfoLogger.Printf("Order %s is now %s", local.OrderNumber, local.Status)
	if m.hub != nil {
		m.hub.BroadcastStatusChange(local)
	}
}

// Metrics returns a copy of the monitor's counters.
func (m *StatusMonitor) Metrics() TrackerMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.metrics
}
