package guard

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTeachingAccepts(t *testing.T) {
	v := New([]string{"lapak.example.com"})

	verdict := v.ValidateTeaching(context.Background(), "ongkir", "gratis untuk semua pembelian", nil)
	assert.True(t, verdict.CanLearn)
	assert.Empty(t, verdict.Issues)
}

func TestValidateTeachingBlockedTerm(t *testing.T) {
	v := New(nil)

	verdict := v.ValidateTeaching(context.Background(), "bonus", "main togel di sini", nil)
	assert.False(t, verdict.CanLearn)
	assert.NotEmpty(t, verdict.Reason)
	assert.NotEmpty(t, verdict.Issues)
}

func TestValidateTeachingEmptyFields(t *testing.T) {
	v := New(nil)

	verdict := v.ValidateTeaching(context.Background(), "", "", nil)
	assert.False(t, verdict.CanLearn)
	assert.Len(t, verdict.Issues, 2)
}

func TestValidateTeachingTooLong(t *testing.T) {
	v := New(nil)

	verdict := v.ValidateTeaching(context.Background(), "ongkir", strings.Repeat("a", 1001), nil)
	assert.False(t, verdict.CanLearn)
}

func TestValidateTeachingLinkPolicy(t *testing.T) {
	v := New([]string{"lapak.example.com"})

	ok := v.ValidateTeaching(context.Background(), "bayar", "cek https://lapak.example.com/pay", nil)
	assert.True(t, ok.CanLearn)

	blocked := v.ValidateTeaching(context.Background(), "bayar", "cek https://scam.example.net/pay", nil)
	assert.False(t, blocked.CanLearn)
}
