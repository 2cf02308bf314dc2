package handlers

import (
	"strings"
	"testing"

	"club-lineup-service/internal/tactics"
	"club-lineup-service/internal/testutil"
)

func TestTacticsSessionRoundTrip(t *testing.T) {
	h := newTestHandler(t, testutil.FullSquad("sq-1", "4-3-3"))

	rr := testutil.Serve(h, "PUT", "/squads/sq-1/tactics/formation",
		strings.NewReader(`{"formation":"4-4-2"}`))
	testutil.AssertStatus(t, rr, 200)

	rr = testutil.Serve(h, "POST", "/squads/sq-1/tactics/placements",
		strings.NewReader(`{"playerId":"sq-16","line":"ATTACK","slot":1}`))
	testutil.AssertStatus(t, rr, 200)

	rr = testutil.Serve(h, "GET", "/squads/sq-1/tactics", nil)
	testutil.AssertStatus(t, rr, 200)

	var session tactics.Session
	testutil.DecodeJSON(t, rr, &session)
	if session.Formation != "4-4-2" {
		t.Fatalf("unexpected formation %s", session.Formation)
	}
	if len(session.Placements) != 1 || session.Placements[0].PlayerID != "sq-16" {
		t.Fatalf("unexpected placements %v", session.Placements)
	}
}

func TestTacticsSetFormationRejectsUnknown(t *testing.T) {
	h := newTestHandler(t, testutil.FullSquad("sq-1", "4-3-3"))

	rr := testutil.Serve(h, "PUT", "/squads/sq-1/tactics/formation",
		strings.NewReader(`{"formation":"9-9-9"}`))
	testutil.AssertStatus(t, rr, 400)
}

func TestTacticsSetFormationRequiresBody(t *testing.T) {
	h := newTestHandler(t, testutil.FullSquad("sq-1", "4-3-3"))

	rr := testutil.Serve(h, "PUT", "/squads/sq-1/tactics/formation",
		strings.NewReader(`{}`))
	testutil.AssertStatus(t, rr, 400)
}

func TestTacticsPlacementValidation(t *testing.T) {
	h := newTestHandler(t, testutil.FullSquad("sq-1", "4-3-3"))

	rr := testutil.Serve(h, "POST", "/squads/sq-1/tactics/placements",
		strings.NewReader(`{"playerId":"sq-16","line":"BENCH","slot":0}`))
	testutil.AssertStatus(t, rr, 400)

	rr = testutil.Serve(h, "POST", "/squads/sq-1/tactics/placements",
		strings.NewReader(`{"playerId":"sq-16","line":"MIDFIELD","slot":7}`))
	testutil.AssertStatus(t, rr, 400)
}

func TestTacticsClear(t *testing.T) {
	h := newTestHandler(t, testutil.FullSquad("sq-1", "4-3-3"))

	rr := testutil.Serve(h, "POST", "/squads/sq-1/tactics/placements",
		strings.NewReader(`{"playerId":"sq-16","line":"ATTACK","slot":1}`))
	testutil.AssertStatus(t, rr, 200)

	testutil.AssertStatus(t, testutil.Serve(h, "DELETE", "/squads/sq-1/tactics", nil), 200)

	rr = testutil.Serve(h, "GET", "/squads/sq-1/tactics", nil)
	var session tactics.Session
	testutil.DecodeJSON(t, rr, &session)
	if len(session.Placements) != 0 {
		t.Fatalf("expected cleared session, got %v", session.Placements)
	}
}

func TestTacticsUnknownSquad(t *testing.T) {
	h := newTestHandler(t)
	rr := testutil.Serve(h, "GET", "/squads/ghost/tactics", nil)
	testutil.AssertStatus(t, rr, 404)
}

func TestTacticsMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, testutil.FullSquad("sq-1", "4-3-3"))
	rr := testutil.Serve(h, "POST", "/squads/sq-1/tactics", nil)
	testutil.AssertStatus(t, rr, 405)
}

func TestTacticsSessionAffectsBoard(t *testing.T) {
	h := newTestHandler(t, testutil.FullSquad("sq-1", "4-3-3"))

	rr := testutil.Serve(h, "POST", "/squads/sq-1/tactics/placements",
		strings.NewReader(`{"playerId":"sq-02","line":"ATTACK","slot":1}`))
	testutil.AssertStatus(t, rr, 200)

	rr = testutil.Serve(h, "GET", "/squads/sq-1/lineup", nil)
	testutil.AssertStatus(t, rr, 200)
	if !strings.Contains(rr.Body.String(), `"sq-02"`) {
		t.Fatalf("expected placed player in board payload")
	}
}
