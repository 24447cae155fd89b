package subm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topfive/backend/srvcerror"
	"github.com/topfive/backend/subm"
)

func errCode(t *testing.T, err error) string {
	t.Helper()
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	return srvcErr.ErrorCode()
}

func TestValidateFieldOk(t *testing.T) {
	assert.NoError(t, subm.ValidateField("Movies", subm.MaxCategoryLength, "Category"))
	assert.NoError(t, subm.ValidateField(strings.Repeat("a", 100), 100, "Category"))
}

func TestValidateFieldEmpty(t *testing.T) {
	err := subm.ValidateField("", subm.MaxCategoryLength, "Category")
	require.Error(t, err)
	assert.Equal(t, subm.ErrCodeEmptyField, errCode(t, err))
	assert.Contains(t, err.Error(), "Category")
}

func TestValidateFieldTooLong(t *testing.T) {
	err := subm.ValidateField(strings.Repeat("a", 201), subm.MaxItemLength, "Item 3")
	require.Error(t, err)
	assert.Equal(t, subm.ErrCodeTooLong, errCode(t, err))
	assert.Contains(t, err.Error(), "Item 3")
	assert.Contains(t, err.Error(), "200")
}

func TestValidateFieldInvalidCharacters(t *testing.T) {
	for _, text := range []string{"<script>", "a>b", `say "hi"`, "it's"} {
		err := subm.ValidateField(text, subm.MaxCategoryLength, "Category")
		require.Error(t, err, "input %q", text)
		assert.Equal(t, subm.ErrCodeInvalidCharacters, errCode(t, err))
		assert.Contains(t, err.Error(), "Category")
	}
}

func TestValidateFieldOrderEmptyBeforeCharset(t *testing.T) {
	// An empty field never reports the charset error even though "" holds
	// no disallowed characters anyway; a too-long field with bad chars
	// reports length first.
	err := subm.ValidateField(strings.Repeat("<", 300), subm.MaxItemLength, "Item 1")
	require.Error(t, err)
	assert.Equal(t, subm.ErrCodeTooLong, errCode(t, err))
}
