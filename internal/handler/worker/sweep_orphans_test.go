package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dbk/assets-ms-go/internal/mock"
	"github.com/dbk/assets-ms-go/internal/task"
)

func TestSweepOrphansHandler_Success(t *testing.T) {
	svc := &mock.MockOrphanSweeper{}

	err := SweepOrphansHandler(context.Background(), task.SweepOrphansPayload{RequestedAt: time.Now()}, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called {
		t.Error("service not called")
	}
}

func TestSweepOrphansHandler_ServiceError(t *testing.T) {
	svcErr := errors.New("svc fail")
	svc := &mock.MockOrphanSweeper{Err: svcErr}

	err := SweepOrphansHandler(context.Background(), task.SweepOrphansPayload{RequestedAt: time.Now()}, svc)
	if !errors.Is(err, svcErr) {
		t.Fatalf("got error %v; want %v", err, svcErr)
	}
	if !svc.Called {
		t.Error("service not called")
	}
}
