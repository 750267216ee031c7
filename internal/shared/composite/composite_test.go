package composite_test

import (
	"testing"

	"go-hrfine/internal/shared/composite"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	ok := composite.Aggregate([]composite.Result{composite.Success(1), composite.Success(2)})
	assert.Equal(t, composite.StatusSuccess, ok.Status)
	assert.Empty(t, ok.Message)

	partial := composite.Aggregate([]composite.Result{composite.Success(1), composite.Failure("x")})
	assert.Equal(t, composite.StatusError, partial.Status)
	assert.Equal(t, "some items failed", partial.Message)
	assert.Len(t, partial.Items, 2)

	all := composite.Aggregate([]composite.Result{composite.Failure("x")})
	assert.Equal(t, "all items failed", all.Message)
}

func TestReportFailed(t *testing.T) {
	r := composite.Report{"a": composite.Success(nil), "b": composite.Skip("exists")}
	assert.False(t, r.Failed())
	r["c"] = composite.Failure("boom")
	assert.True(t, r.Failed())
}
