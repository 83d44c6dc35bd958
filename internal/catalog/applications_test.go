package catalog_test

import (
	"context"
	"strings"
	"testing"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/catalog"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	app, err := c.Applications.Submit(ctx, catalog.ApplicationInput{
		JobID:             "default-sales",
		ApplicantName:     "  Elena Vasile ",
		Phone:             "0744 555 666",
		Email:             "elena@example.com",
		Message:           "Disponibilă imediat.",
		PreferredLocation: "Brutăria Gară",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if app.ID == "" || app.Status != models.ApplicationNew {
		t.Errorf("app = %+v", app)
	}
	if app.JobTitle != "Lucrător Comercial (Vânzătoare)" {
		t.Errorf("job title snapshot = %q", app.JobTitle)
	}
	if app.ApplicantName != "Elena Vasile" {
		t.Errorf("name not trimmed: %q", app.ApplicantName)
	}
	if app.Message == nil {
		t.Fatal("message missing")
	}
	loc, rest := models.SplitPreferredLocation(*app.Message)
	if loc != "Brutăria Gară" || rest != "Disponibilă imediat." {
		t.Errorf("message = %q", *app.Message)
	}
	if !app.DateApplied.Equal(fixedNow) {
		t.Errorf("date applied = %v", app.DateApplied)
	}
}

func TestSubmitApplication_TitleFromStoredJob(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	job, _ := c.Jobs.Create(ctx, cashier())

	app, err := c.Applications.Submit(ctx, catalog.ApplicationInput{JobID: job.ID, ApplicantName: "Ana", Phone: "0700"})
	if err != nil {
		t.Fatal(err)
	}
	if app.JobTitle != "Casier" {
		t.Errorf("job title = %q", app.JobTitle)
	}

	_, err = c.Applications.Submit(ctx, catalog.ApplicationInput{JobID: "no-such-job", ApplicantName: "Ana", Phone: "0700"})
	wantKind(t, err, apperrors.KindValidation)
}

func TestSubmitApplication_Validation(t *testing.T) {
	c, ms := newCatalog(t)
	_, err := c.Applications.Submit(context.Background(), catalog.ApplicationInput{JobID: "default-sales", ApplicantName: "Ana"})
	wantKind(t, err, apperrors.KindValidation)
	if !strings.Contains(err.Error(), "phone") {
		t.Errorf("error should name the field: %v", err)
	}
	if ms.Writes() != 0 {
		t.Errorf("Writes = %d, want 0", ms.Writes())
	}
}

func TestUploadCV(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	file, err := c.Applications.UploadCV(ctx, "My CV (final).pdf", "application/pdf", strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("UploadCV: %v", err)
	}
	want := "1709285400000_My_CV_final_.pdf"
	if file.Name != want {
		t.Errorf("name = %q, want %q", file.Name, want)
	}
	if !strings.HasSuffix(file.URL, "/cvs/"+want) {
		t.Errorf("url = %q", file.URL)
	}

	_, err = c.Applications.UploadCV(ctx, "virus.exe", "", strings.NewReader("MZ"))
	wantKind(t, err, apperrors.KindValidation)
}

func TestApplicationStatus_Unconstrained(t *testing.T) {
	ctx := context.Background()
	c, ms := newCatalog(t)
	app, _ := c.Applications.Submit(ctx, catalog.ApplicationInput{JobID: "default-baker", ApplicantName: "Ana", Phone: "0700"})

	for _, st := range []string{"trashed", "new", "starred", "rejected", "new"} {
		if err := c.Applications.UpdateStatus(ctx, app.ID, st); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", st, err)
		}
		if got := ms.Rows(store.TableApplications)[0]["status"]; got != st {
			t.Errorf("status = %v, want %s", got, st)
		}
	}
	wantKind(t, c.Applications.UpdateStatus(ctx, app.ID, "archived"), apperrors.KindValidation)
	wantKind(t, c.Applications.UpdateStatus(ctx, "missing", "new"), apperrors.KindNotFound)
}

func TestSeedApplications_AreNoOps(t *testing.T) {
	ctx := context.Background()
	c, ms := newCatalog(t)
	if err := c.Applications.UpdateStatus(ctx, "default-app-1", "starred"); err != nil {
		t.Errorf("UpdateStatus: %v", err)
	}
	if err := c.Applications.Delete(ctx, "default-app-2", "http://x/cvs/1_a.pdf"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if ms.Writes() != 0 || len(ms.Removed()) != 0 {
		t.Errorf("Writes = %d, Removed = %v", ms.Writes(), ms.Removed())
	}
}

func TestDeleteApplication_RemovesCV(t *testing.T) {
	ctx := context.Background()
	c, ms := newCatalog(t)
	cvURL := "http://localhost:54321/storage/v1/object/public/cvs/123_resume.pdf"
	app, err := c.Applications.Submit(ctx, catalog.ApplicationInput{
		JobID: "default-baker", ApplicantName: "Ana", Phone: "0700",
		CVFileName: "resume.pdf", CVURL: cvURL,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Applications.Delete(ctx, app.ID, cvURL); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := len(ms.Rows(store.TableApplications)); n != 0 {
		t.Errorf("rows left = %d", n)
	}
	if r := ms.Removed(); len(r) != 1 || r[0] != "cvs/123_resume.pdf" {
		t.Errorf("Removed = %v, want [cvs/123_resume.pdf]", r)
	}
}
