package mission_backlog

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var missionBacklogGauge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "mission_backlog_pending_total",
		Help: "Number of pending missions waiting for a courier",
	},
)

type Service interface {
	CountAvailable(ctx context.Context) (int64, error)
}

// MissionBacklog периодически обновляет gauge с числом незабранных
// миссий. На этот показатель алертится диспетчеризация.
type MissionBacklog struct {
	service  Service
	interval time.Duration
}

func NewMissionBacklog(service Service, interval time.Duration) *MissionBacklog {
	return &MissionBacklog{
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (m *MissionBacklog) TTL() time.Duration {
	return m.interval
}

// Do выполняет логику задачи.
func (m *MissionBacklog) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	count, err := m.service.CountAvailable(ctxWithTimeout)
	if err != nil {
		return err
	}

	missionBacklogGauge.Set(float64(count))
	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (m *MissionBacklog) Info() string {
	return "mission backlog gauge"
}
