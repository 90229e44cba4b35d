// Command dequeserve exposes a chunked deque as a small HTTP work queue:
// POST /push enqueues a value at the back, POST /pop dequeues one from the
// front. It exists to give the deque package a realistic consumer that
// exercises structured logging and metrics, the way a library this shape
// would actually be used inside a larger service.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shell769324/chunkdeque"
)

var (
	pushTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dequeserve_push_total",
		Help: "Total number of successful push requests.",
	})
	popTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dequeserve_pop_total",
		Help: "Total number of successful pop requests.",
	})
	popEmptyTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dequeserve_pop_empty_total",
		Help: "Total number of pop requests against an empty queue.",
	})
	queueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dequeserve_queue_depth",
		Help: "Current number of elements held in the queue.",
	})
)

func init() {
	prometheus.MustRegister(pushTotal, popTotal, popEmptyTotal, queueDepth)
}

// server guards a single *deque.Deque[string] behind a mutex: the
// container itself has no concurrency story (see spec.md's Non-goals), so
// any concurrent access has to be serialized by the caller, exactly as it
// would be around a plain slice.
type server struct {
	mu sync.Mutex
	q  *deque.Deque[string]
	lg *logrus.Logger
}

type pushRequest struct {
	Value string `json:"value"`
}

type popResponse struct {
	Value string `json:"value"`
	OK    bool   `json:"ok"`
}

func (s *server) handlePush(w http.ResponseWriter, r *http.Request) {
	var req pushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.lg.WithError(err).Warn("rejecting malformed push request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.q.PushBack(req.Value)
	depth := s.q.Len()
	s.mu.Unlock()

	pushTotal.Inc()
	queueDepth.Set(float64(depth))
	s.lg.WithField("depth", depth).Debug("pushed value")
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handlePop(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	v, ok := s.q.Front()
	if ok {
		s.q.PopFront()
	}
	depth := s.q.Len()
	s.mu.Unlock()

	if !ok {
		popEmptyTotal.Inc()
		s.lg.Debug("pop against empty queue")
	} else {
		popTotal.Inc()
		queueDepth.Set(float64(depth))
		s.lg.WithField("depth", depth).Debug("popped value")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(popResponse{Value: v, OK: ok})
}

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	lg := logrus.New()
	lg.SetFormatter(&logrus.JSONFormatter{})

	s := &server{q: deque.New[string](), lg: lg}

	mux := http.NewServeMux()
	mux.HandleFunc("/push", s.handlePush)
	mux.HandleFunc("/pop", s.handlePop)
	mux.Handle("/metrics", promhttp.Handler())

	lg.WithField("addr", *addr).Info("starting dequeserve")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		lg.WithError(err).Fatal("server exited")
	}
}
