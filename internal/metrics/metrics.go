package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScheduleGenerations счетчик построенных графиков
	ScheduleGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_generations_total",
			Help: "Количество построенных графиков платежей",
		},
		[]string{"convention", "status"},
	)

	// CollectorInputs счетчик вводов в пошаговый сбор параметров
	CollectorInputs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collector_inputs_total",
			Help: "Вводы пользователя на шагах сбора параметров",
		},
		[]string{"step", "result"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"operation", "error_type"},
	)

	// HTTPRequests счетчик HTTP запросов
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP запросы по маршрутам и кодам ответа",
		},
		[]string{"route", "code"},
	)

	// HTTPDuration длительность обработки HTTP запросов
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Длительность обработки HTTP запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)
