package app_test

import (
	"testing"

	"github.com/kamholtz/trak/internal/app"
	"github.com/kamholtz/trak/internal/testutil"
)

func TestNew(t *testing.T) {
	repo := testutil.SetupTestRepository(t)

	a := app.New(repo)
	if a == nil {
		t.Fatal("Expected app to be created, got nil")
	}

	if a.TaskService == nil {
		t.Error("Expected TaskService to be initialized")
	}
	if a.RiskService == nil {
		t.Error("Expected RiskService to be initialized")
	}
	if a.PlanService == nil {
		t.Error("Expected PlanService to be initialized")
	}
	if a.Repo() == nil {
		t.Error("Expected Repo to return the data store")
	}
}

func TestClose(t *testing.T) {
	a := app.New(testutil.SetupTestRepository(t))

	if err := a.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
