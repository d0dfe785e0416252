package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/lib/llm"
	"github.com/landpro-backend/models"
)

func generateReq() dto.GenerateQuoteRequest {
	return dto.GenerateQuoteRequest{
		ClientName:     "John Smith",
		JobDescription: "Clear 2 acres of brush and grade for construction",
		PropertySize:   2,
		PropertyUnit:   "acres",
	}
}

func TestGenerateQuoteComposesTotals(t *testing.T) {
	reply := `{"jobTitle":"Brush Clearing & Grading","laborCost":799.6,"equipmentCost":350.2,"materialCost":250.4,"completionTime":2.6,"notes":"Includes debris removal."}`
	svc := NewQuoteService(fakeLLM(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionWith("```json\n" + reply + "\n```")))
	}))

	quote, err := svc.GenerateQuote(context.Background(), generateReq())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if quote.LaborCost != 800 || quote.EquipmentCost != 350 || quote.MaterialCost != 250 {
		t.Fatalf("expected rounded costs 800/350/250, got %v/%v/%v",
			quote.LaborCost, quote.EquipmentCost, quote.MaterialCost)
	}
	// Total comes from the parsed components, never from the model.
	if quote.TotalEstimate != 1400 {
		t.Fatalf("expected total 1400, got %v", quote.TotalEstimate)
	}
	if quote.CompletionTime != 3 {
		t.Fatalf("expected completion time 3 days, got %d", quote.CompletionTime)
	}
	if quote.ClientName != "John Smith" {
		t.Fatalf("expected client name echoed back, got %q", quote.ClientName)
	}
	if _, err := time.Parse(time.RFC3339, quote.Timestamp); err != nil {
		t.Fatalf("expected RFC3339 timestamp, got %q", quote.Timestamp)
	}
}

func TestGenerateQuoteRateLimitPassthrough(t *testing.T) {
	svc := NewQuoteService(fakeLLM(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	_, err := svc.GenerateQuote(context.Background(), generateReq())
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestGenerateQuoteMalformedReply(t *testing.T) {
	svc := NewQuoteService(fakeLLM(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionWith("I'd estimate around $1,400 for this job.")))
	}))
	_, err := svc.GenerateQuote(context.Background(), generateReq())
	if !errors.Is(err, llm.ErrMalformedReply) {
		t.Fatalf("expected ErrMalformedReply, got %v", err)
	}
}

func TestCreateQuoteDerivesTotal(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewQuoteService(nil)

	quote, err := svc.CreateQuote(user.ID, dto.CreateQuoteRequest{
		JobTitle:      "Mulching",
		LaborCost:     500,
		EquipmentCost: 300,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if quote.Total != 800 {
		t.Fatalf("expected total 800, got %v", quote.Total)
	}
	if quote.Status != models.QuotePending {
		t.Fatalf("expected pending status, got %s", quote.Status)
	}
	if quote.PropertyUnit != "acres" {
		t.Fatalf("expected default unit acres, got %q", quote.PropertyUnit)
	}
}

func TestUpdateQuoteRecomputesTotal(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewQuoteService(nil)

	quote, err := svc.CreateQuote(user.ID, dto.CreateQuoteRequest{
		JobTitle: "Grading", LaborCost: 500, MaterialCost: 100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	labor := 700.0
	updated, err := svc.UpdateQuote(quote.ID, user.ID, false, dto.UpdateQuoteRequest{
		LaborCost: &labor,
		UpdatedAt: quote.UpdatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Total != 800 {
		t.Fatalf("expected recomputed total 800, got %v", updated.Total)
	}
}

func TestUpdateQuoteStaleVersionConflicts(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewQuoteService(nil)

	quote, err := svc.CreateQuote(user.ID, dto.CreateQuoteRequest{
		JobTitle: "Grading", LaborCost: 500,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Regrading"
	stale := quote.UpdatedAt.Add(-time.Minute).Format(time.RFC3339Nano)
	_, err = svc.UpdateQuote(quote.ID, user.ID, false, dto.UpdateQuoteRequest{
		JobTitle:  &title,
		UpdatedAt: stale,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for stale version, got %v", err)
	}
}

func TestQuoteOwnership(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "owner@example.com")
	other := seedUser(t, "other@example.com")
	svc := NewQuoteService(nil)

	quote, err := svc.CreateQuote(owner.ID, dto.CreateQuoteRequest{JobTitle: "Mowing", LaborCost: 50})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetQuote(quote.ID, other.ID, false); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another user, got %v", err)
	}
	if _, err := svc.GetQuote(quote.ID, other.ID, true); err != nil {
		t.Fatalf("expected admin access, got %v", err)
	}
	if _, err := svc.GetQuote("00000000-0000-0000-0000-000000000000", owner.ID, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListQuotesFiltersByStatus(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	svc := NewQuoteService(nil)

	q1, err := svc.CreateQuote(user.ID, dto.CreateQuoteRequest{JobTitle: "One", LaborCost: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateQuote(user.ID, dto.CreateQuoteRequest{JobTitle: "Two", LaborCost: 20}); err != nil {
		t.Fatalf("create: %v", err)
	}

	approved := models.QuoteApproved
	if _, err := svc.UpdateQuote(q1.ID, user.ID, false, dto.UpdateQuoteRequest{
		Status:    &approved,
		UpdatedAt: q1.UpdatedAt.Format(time.RFC3339Nano),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := svc.ListQuotes(user.ID, 1, 10, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all.TotalCount != 2 {
		t.Fatalf("expected 2 quotes, got %d", all.TotalCount)
	}

	filtered, err := svc.ListQuotes(user.ID, 1, 10, "approved")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if filtered.TotalCount != 1 || filtered.Quotes[0].ID != q1.ID {
		t.Fatalf("expected only the approved quote, got %+v", filtered.Quotes)
	}
}
