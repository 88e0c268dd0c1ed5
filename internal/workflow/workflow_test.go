package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRun_AllForwardSucceed(t *testing.T) {
	var compensated []string
	steps := []Step{
		{
			Name: "one",
			Forward: func(ctx context.Context) (any, any, error) {
				return "out1", "comp1", nil
			},
			Compensate: func(ctx context.Context, in any) error {
				compensated = append(compensated, "one")
				return nil
			},
		},
		{
			Name: "two",
			Forward: func(ctx context.Context) (any, any, error) {
				return "out2", "comp2", nil
			},
			Compensate: func(ctx context.Context, in any) error {
				compensated = append(compensated, "two")
				return nil
			},
		},
	}

	results, err := Run(context.Background(), steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].Output != "out2" {
		t.Errorf("expected output %q, got %v", "out2", results[1].Output)
	}
	if len(compensated) != 0 {
		t.Errorf("expected no compensation, got %v", compensated)
	}
}

func TestRun_FailureCompensatesInReverseOrder(t *testing.T) {
	var compensated []string
	var compInputs []any
	mk := func(name string) Step {
		return Step{
			Name: name,
			Forward: func(ctx context.Context) (any, any, error) {
				return nil, "undo-" + name, nil
			},
			Compensate: func(ctx context.Context, in any) error {
				compensated = append(compensated, name)
				compInputs = append(compInputs, in)
				return nil
			},
		}
	}
	boom := errors.New("boom")
	steps := []Step{
		mk("one"),
		mk("two"),
		{
			Name: "three",
			Forward: func(ctx context.Context) (any, any, error) {
				return nil, nil, boom
			},
			Compensate: func(ctx context.Context, in any) error {
				t.Error("failed step must not be compensated")
				return nil
			},
		},
	}

	_, err := Run(context.Background(), steps)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if !strings.Contains(err.Error(), `step "three" failed`) {
		t.Errorf("error should name the failed step, got %v", err)
	}
	if len(compensated) != 2 || compensated[0] != "two" || compensated[1] != "one" {
		t.Fatalf("expected reverse-order compensation [two one], got %v", compensated)
	}
	if compInputs[0] != "undo-two" || compInputs[1] != "undo-one" {
		t.Errorf("each step must receive its own captured input, got %v", compInputs)
	}
}

func TestRun_CompensationFailureDoesNotHaltSweep(t *testing.T) {
	var compensated []string
	steps := []Step{
		{
			Name: "one",
			Forward: func(ctx context.Context) (any, any, error) {
				return nil, nil, nil
			},
			Compensate: func(ctx context.Context, in any) error {
				compensated = append(compensated, "one")
				return nil
			},
		},
		{
			Name: "two",
			Forward: func(ctx context.Context) (any, any, error) {
				return nil, nil, nil
			},
			Compensate: func(ctx context.Context, in any) error {
				compensated = append(compensated, "two")
				return errors.New("undo failed")
			},
		},
		{
			Name: "three",
			Forward: func(ctx context.Context) (any, any, error) {
				return nil, nil, errors.New("forward failed")
			},
		},
	}

	_, err := Run(context.Background(), steps)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(compensated) != 2 || compensated[0] != "two" || compensated[1] != "one" {
		t.Fatalf("expected both compensations attempted, got %v", compensated)
	}
}

func TestRun_NilCompensateIsSkipped(t *testing.T) {
	steps := []Step{
		{
			Name: "readonly",
			Forward: func(ctx context.Context) (any, any, error) {
				return nil, nil, nil
			},
		},
		{
			Name: "fails",
			Forward: func(ctx context.Context) (any, any, error) {
				return nil, nil, errors.New("nope")
			},
		},
	}

	if _, err := Run(context.Background(), steps); err == nil {
		t.Fatal("expected error, got nil")
	}
}
