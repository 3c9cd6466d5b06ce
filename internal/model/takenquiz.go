package model

import "encoding/json"

// TakenQuiz is one recorded quiz completion.
//
// The client submits a JSON object with at least a quizId; any additional
// result fields (score, timestamp, whatever the quiz frontend attaches)
// are opaque to the server and must be echoed back byte-for-byte. To make
// that work, unmarshalling keeps the full raw object in Result and only
// extracts QuizID, and marshalling emits Result verbatim.
type TakenQuiz struct {
	QuizID string
	Result json.RawMessage
}

// UnmarshalJSON captures the raw object and pulls out the quizId field.
func (q *TakenQuiz) UnmarshalJSON(data []byte) error {
	var probe struct {
		QuizID string `json:"quizId"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	q.QuizID = probe.QuizID
	q.Result = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the original payload unchanged. A TakenQuiz built
// without a raw payload serializes as {"quizId": ...}.
func (q TakenQuiz) MarshalJSON() ([]byte, error) {
	if len(q.Result) > 0 {
		return q.Result, nil
	}
	return json.Marshal(struct {
		QuizID string `json:"quizId"`
	}{QuizID: q.QuizID})
}
