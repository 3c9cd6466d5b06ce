package model

import (
	"encoding/json"
	"testing"
)

func TestTakenQuiz_KeepsPayloadVerbatim(t *testing.T) {
	raw := `{"quizId":"q1","score":5,"finishedAt":"2024-06-01T10:00:00Z"}`

	var q TakenQuiz
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if q.QuizID != "q1" {
		t.Errorf("QuizID = %q, want q1", q.QuizID)
	}

	out, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != raw {
		t.Errorf("Marshal() = %s, want the original payload %s", out, raw)
	}
}

func TestTakenQuiz_WithoutRawPayload(t *testing.T) {
	out, err := json.Marshal(TakenQuiz{QuizID: "q9"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"quizId":"q9"}` {
		t.Errorf("Marshal() = %s, want {\"quizId\":\"q9\"}", out)
	}
}

func TestTakenQuiz_RejectsMalformedJSON(t *testing.T) {
	var q TakenQuiz
	if err := json.Unmarshal([]byte(`{"quizId":`), &q); err == nil {
		t.Fatal("Unmarshal() should fail on malformed input")
	}
}

func TestUser_NeverSerializesPasswordHash(t *testing.T) {
	u := User{
		ID:           "u1",
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "$2a$12$secret-digest",
	}

	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for key := range decoded {
		if key == "passwordHash" || key == "password" {
			t.Fatalf("serialized user contains %q", key)
		}
	}
}
