package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/kamholtz/trak/internal/models"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	task := &models.Task{ID: 7, Title: "Fix login bug", Status: models.StatusTodo}

	output := captureStdout(t, func() {
		if err := formatter.Success(task); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if !result["success"].(bool) {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["Title"] != "Fix login bug" {
		t.Errorf("Expected data.Title to be 'Fix login bug', got %v", data["Title"])
	}
}

func TestOutputFormatter_Success_Quiet_PrintsID(t *testing.T) {
	formatter := &OutputFormatter{Quiet: true}
	task := &models.Task{ID: 42, Title: "Quiet task"}

	output := captureStdout(t, func() {
		if err := formatter.Success(task); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	if strings.TrimSpace(output) != "42" {
		t.Errorf("Expected bare ID output, got %q", output)
	}
}

func TestOutputFormatter_Success_HumanTaskList(t *testing.T) {
	formatter := &OutputFormatter{}
	tasks := []*models.Task{
		{ID: 1, Title: "First", Status: models.StatusTodo, DueDate: "2026-09-05"},
		{ID: 2, Title: "Second", Status: models.StatusDone},
	}

	output := captureStdout(t, func() {
		if err := formatter.Success(tasks); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	if !strings.Contains(output, "First") || !strings.Contains(output, "Second") {
		t.Errorf("Expected both task titles in output, got %q", output)
	}
	if !strings.Contains(output, "due 2026-09-05") {
		t.Errorf("Expected due date annotation, got %q", output)
	}
}

func TestOutputFormatter_Success_HumanEmptyList(t *testing.T) {
	formatter := &OutputFormatter{}

	output := captureStdout(t, func() {
		if err := formatter.Success([]*models.Task{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	if !strings.Contains(output, "No tasks found") {
		t.Errorf("Expected empty-list message, got %q", output)
	}
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := captureStdout(t, func() {
		if err := formatter.ErrorWithSuggestion("TASK_NOT_FOUND", "task 9 not found", "run trak task list"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if result["success"].(bool) {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != "TASK_NOT_FOUND" {
		t.Errorf("Expected error code TASK_NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "run trak task list" {
		t.Errorf("Expected suggestion in error payload, got %v", errData["suggestion"])
	}
}
