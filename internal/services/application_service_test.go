package services

import (
	"context"
	"errors"
	"testing"

	"gigcampus/internal/models/db_models"
	"gigcampus/internal/models/request_models"
	"gigcampus/pkg/utils"
)

func newApplicationService(f *fixture) ApplicationService {
	return NewApplicationService(f.db, f.apps, f.projects)
}

func applyRequest(project *db_models.Project) request_models.ApplyRequest {
	return request_models.ApplyRequest{
		ProjectID:         project.ID,
		CoverLetter:       "I have built three of these.",
		ProposedBudget:    8_000,
		EstimatedDuration: "2 weeks",
	}
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	f := newFixture(t)
	svc := newApplicationService(f)

	client := f.seedUser(t, db_models.UserTypeClient, 0)
	student := f.seedUser(t, db_models.UserTypeStudent, 0)
	project := f.seedProject(t, client.ID, db_models.ProjectStatusActive)

	app, err := svc.Apply(context.Background(), student.ID, applyRequest(project))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.Status != db_models.ApplicationStatusPending {
		t.Fatalf("application status = %s, want pending", app.Status)
	}
	if app.StudentID != student.ID || app.ProjectID != project.ID {
		t.Fatalf("unexpected application: %+v", app)
	}
}

func TestApplyTwiceToSameProjectIsRejected(t *testing.T) {
	f := newFixture(t)
	svc := newApplicationService(f)

	client := f.seedUser(t, db_models.UserTypeClient, 0)
	student := f.seedUser(t, db_models.UserTypeStudent, 0)
	project := f.seedProject(t, client.ID, db_models.ProjectStatusActive)

	if _, err := svc.Apply(context.Background(), student.ID, applyRequest(project)); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := svc.Apply(context.Background(), student.ID, applyRequest(project)); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("duplicate apply should fail validation, got %v", err)
	}
}

func TestApplyToOwnProjectIsRejected(t *testing.T) {
	f := newFixture(t)
	svc := newApplicationService(f)

	client := f.seedUser(t, db_models.UserTypeClient, 0)
	project := f.seedProject(t, client.ID, db_models.ProjectStatusActive)

	if _, err := svc.Apply(context.Background(), client.ID, applyRequest(project)); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestApplyToInactiveProjectIsRejected(t *testing.T) {
	f := newFixture(t)
	svc := newApplicationService(f)

	client := f.seedUser(t, db_models.UserTypeClient, 0)
	student := f.seedUser(t, db_models.UserTypeStudent, 0)
	project := f.seedProject(t, client.ID, db_models.ProjectStatusCompleted)

	if _, err := svc.Apply(context.Background(), student.ID, applyRequest(project)); !errors.Is(err, utils.ErrInvalidState) {
		t.Fatalf("want ErrInvalidState, got %v", err)
	}
}

func TestAcceptMovesProjectInProgress(t *testing.T) {
	f := newFixture(t)
	svc := newApplicationService(f)

	client := f.seedUser(t, db_models.UserTypeClient, 0)
	student := f.seedUser(t, db_models.UserTypeStudent, 0)
	project := f.seedProject(t, client.ID, db_models.ProjectStatusActive)

	app, err := svc.Apply(context.Background(), student.ID, applyRequest(project))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := svc.Accept(context.Background(), client.ID, app.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	stored, err := f.apps.FindByID(context.Background(), app.ID)
	if err != nil || stored == nil {
		t.Fatalf("load application: %v", err)
	}
	if stored.Status != db_models.ApplicationStatusAccepted {
		t.Fatalf("application status = %s, want accepted", stored.Status)
	}

	updated, err := f.projects.FindByID(context.Background(), project.ID)
	if err != nil || updated == nil {
		t.Fatalf("load project: %v", err)
	}
	if updated.Status != db_models.ProjectStatusInProgress {
		t.Fatalf("project status = %s, want in_progress", updated.Status)
	}

	// Only the first accept flips the pending row.
	if err := svc.Accept(context.Background(), client.ID, app.ID); !errors.Is(err, utils.ErrInvalidState) {
		t.Fatalf("double accept should hit ErrInvalidState, got %v", err)
	}
}

func TestAcceptByNonOwnerIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	svc := newApplicationService(f)

	client := f.seedUser(t, db_models.UserTypeClient, 0)
	student := f.seedUser(t, db_models.UserTypeStudent, 0)
	project := f.seedProject(t, client.ID, db_models.ProjectStatusActive)

	app, err := svc.Apply(context.Background(), student.ID, applyRequest(project))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := svc.Accept(context.Background(), student.ID, app.ID); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}
