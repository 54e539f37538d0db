package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches to dir for the duration of the test; t.Chdir requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
}

func TestHandleMessage(t *testing.T) {
	chdir(t, t.TempDir())

	ev := VoteCastEvent{
		VoteID:        12,
		UserID:        7,
		CandidateID:   3,
		CandidateName: "Alpha",
		CastAt:        "2026-08-30T12:00:00Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	if err := handleMessage(body); err != nil {
		t.Fatalf("handleMessage() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join("logs", "votes.log"))
	if err != nil {
		t.Fatalf("read audit log: %v", err)
	}
	line := string(data)
	for _, want := range []string{"vote_id=12", "user_id=7", "candidate_id=3", `candidate="Alpha"`} {
		if !strings.Contains(line, want) {
			t.Errorf("audit line missing %q: %s", want, line)
		}
	}
}

func TestHandleMessageBadPayload(t *testing.T) {
	chdir(t, t.TempDir())

	if err := handleMessage([]byte("not-json")); err == nil {
		t.Fatal("handleMessage() accepted a malformed payload")
	}
	if _, err := os.Stat(filepath.Join("logs", "votes.log")); !os.IsNotExist(err) {
		t.Error("malformed payload should not produce an audit line")
	}
}
