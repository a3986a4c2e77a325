package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"training-dashboard/internal/logger"
)

const componentTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Manager shuts registered components down in reverse registration order,
// either on request or when the process receives an interrupt.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	mu         sync.Mutex
	once       sync.Once
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
	timeout    time.Duration
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		timeout:    componentTimeout,
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen shuts down on SIGINT or SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.ctx.Done():
		}
		signal.Stop(sigChan)
	}()
}

// Shutdown runs once; later calls return immediately. Done is closed after
// every component has finished or timed out.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		components := make([]Shutdownable, len(m.components))
		copy(components, m.components)
		m.mu.Unlock()

		m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"components": len(components),
		})

		m.cancel()

		for i := len(components) - 1; i >= 0; i-- {
			component := components[i]

			finished := make(chan struct{})
			go func() {
				defer close(finished)
				component.Shutdown()
			}()

			select {
			case <-finished:
			case <-time.After(m.timeout):
				m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
					"component_index": i,
				})
			}
		}

		m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
		close(m.done)
	})
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
