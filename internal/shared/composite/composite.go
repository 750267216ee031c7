// Package composite carries per-section outcomes of multi-entity submissions.
package composite

const (
	StatusSuccess = "success"
	StatusSkip    = "skip"
	StatusError   = "error"
)

type Result struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Items   []Result `json:"items,omitempty"`
}

type Report map[string]Result

func Success(data any) Result {
	return Result{Status: StatusSuccess, Data: data}
}

func Skip(message string) Result {
	return Result{Status: StatusSkip, Message: message}
}

func Failure(message string) Result {
	return Result{Status: StatusError, Message: message}
}

// Aggregate folds item results into one section result. The section fails
// when any item failed.
func Aggregate(items []Result) Result {
	res := Result{Status: StatusSuccess, Items: items}
	failed := 0
	for _, it := range items {
		if it.Status == StatusError {
			failed++
		}
	}
	if failed > 0 {
		res.Status = StatusError
		if failed == len(items) {
			res.Message = "all items failed"
		} else {
			res.Message = "some items failed"
		}
	}
	return res
}

func (r Report) Failed() bool {
	for _, res := range r {
		if res.Status == StatusError {
			return true
		}
	}
	return false
}
