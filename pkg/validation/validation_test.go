package validation

import "testing"

func TestNewReportIsValid(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("expected new report to be valid")
	}
}

func TestAddErrorInvalidates(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Level: LevelConfig, Message: "bad value"})
	if r.Valid {
		t.Error("expected report to be invalid after AddError")
	}
	if len(r.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(r.Errors))
	}
	if r.Errors[0].Severity != SeverityError {
		t.Errorf("expected severity stamped to error, got %s", r.Errors[0].Severity)
	}
}

func TestWarningsKeepValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelGeneration, Message: "slow"})
	r.AddInfo(Result{Level: LevelGeneration, Message: "done"})
	if !r.Valid {
		t.Error("expected warnings and info to keep report valid")
	}
	if r.Summary != "0 errors, 1 warnings, 1 info" {
		t.Errorf("unexpected summary %q", r.Summary)
	}
}

func TestMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Message: "w"})
	b := NewReport()
	b.AddError(Result{Message: "e"})

	a.Merge(b)
	if a.Valid {
		t.Error("expected merged report to be invalid")
	}
	if len(a.Errors) != 1 || len(a.Warnings) != 1 {
		t.Errorf("expected 1 error and 1 warning, got %d and %d", len(a.Errors), len(a.Warnings))
	}
}
