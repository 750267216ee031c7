package patch_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/patch"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

type paymentPatch struct {
	Bank        patch.Field[string] `json:"bank"`
	AccountNo   patch.Field[string] `json:"account_no"`
	PaymentType patch.Field[string] `json:"payment_type"`
}

type payment struct {
	Bank        string
	AccountNo   *string
	PaymentType string
}

func TestUnmarshal_TriState(t *testing.T) {
	var p paymentPatch
	assert.NoError(t, json.Unmarshal([]byte(`{"bank":"X","account_no":null}`), &p))

	v, ok := p.Bank.Get()
	assert.True(t, ok)
	assert.Equal(t, "X", *v)

	assert.True(t, p.AccountNo.Present)
	assert.True(t, p.AccountNo.IsNull())

	assert.False(t, p.PaymentType.Present)
}

func TestApply_OnlyPresentFieldsOverwrite(t *testing.T) {
	acct := "123"
	rec := payment{Bank: "Old", AccountNo: &acct, PaymentType: "transfer"}

	var p paymentPatch
	assert.NoError(t, json.Unmarshal([]byte(`{"bank":"X"}`), &p))

	err := patch.FirstErr(
		p.Bank.Apply(&rec.Bank, "bank"),
		p.PaymentType.Apply(&rec.PaymentType, "payment_type"),
	)
	p.AccountNo.ApplyPtr(&rec.AccountNo)

	assert.NoError(t, err)
	assert.Equal(t, "X", rec.Bank)
	assert.Equal(t, "transfer", rec.PaymentType)
	assert.Equal(t, "123", *rec.AccountNo)
}

func TestApply_NullHandling(t *testing.T) {
	acct := "123"
	rec := payment{Bank: "Old", AccountNo: &acct}

	patch.Null[string]().ApplyPtr(&rec.AccountNo)
	assert.Nil(t, rec.AccountNo)

	err := patch.Null[string]().Apply(&rec.Bank, "bank")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Equal(t, "Old", rec.Bank)
}

func TestMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A patch.Field[int] `json:"a"`
		B patch.Field[int] `json:"b"`
	}{A: patch.Of(3)})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(b))
}

func TestText(t *testing.T) {
	name := "old"
	assert.NoError(t, patch.Text(patch.Field[string]{}, &name, "name"))
	assert.Equal(t, "old", name)

	assert.NoError(t, patch.Text(patch.Of("  new "), &name, "name"))
	assert.Equal(t, "new", name)

	err := patch.Text(patch.Of("   "), &name, "name")
	assert.Equal(t, "name is required", apperror.ToHTTP(err).Message)
	err = patch.Text(patch.Null[string](), &name, "name")
	assert.Equal(t, "name is required", apperror.ToHTTP(err).Message)
}

func TestDate(t *testing.T) {
	var d datatypes.Date
	assert.NoError(t, patch.Date(patch.Of("2025-03-01"), &d, "deli_date"))
	assert.Equal(t, "2025-03-01", time.Time(d).Format("2006-01-02"))

	err := patch.Date(patch.Of("01/03/2025"), &d, "deli_date")
	assert.Equal(t, "deli_date must be a date in YYYY-MM-DD format", apperror.ToHTTP(err).Message)

	err = patch.Date(patch.Null[string](), &d, "deli_date")
	assert.Equal(t, "deli_date cannot be null", apperror.ToHTTP(err).Message)

	ptr := &d
	assert.NoError(t, patch.DatePtr(patch.Null[string](), &ptr, "terminate_date"))
	assert.Nil(t, ptr)
}
