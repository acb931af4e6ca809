package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	auction "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionService"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/clock"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/history"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/repository"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/schedule"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/server"
)

var istZone = clock.FixedOffset("IST", 330)

// TestEnv wires the full HTTP stack over the in-memory store with a fake
// clock, so integration tests can move time and tick by hand.
type TestEnv struct {
	Router  *gin.Engine
	Service *auction.Service
	Store   *repository.MemoryRepo
	Clock   *clock.Fake
}

// Tick moves the clock to the given moment and runs one coordinator tick.
func (e *TestEnv) Tick(at time.Time) {
	e.Clock.Set(at)
	e.Service.Tick(context.Background())
}

// SetupTestEnv initializes the router with the in-memory repository for
// integration testing, scheduling the given descriptors.
func SetupTestEnv(start time.Time, descriptors ...model.AuctionDescriptor) *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	clk := clock.NewFake(start)
	svc := auction.NewService(repo, schedule.Static(descriptors), clk, history.LogSink{})
	router := server.SetupRouter(svc)

	return &TestEnv{Router: router, Service: svc, Store: repo, Clock: clk}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
