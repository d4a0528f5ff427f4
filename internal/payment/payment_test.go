package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProcessorProcess(t *testing.T) {
	processor := &MockProcessor{Method: "CARD"}

	result, err := processor.Process(2000, "FCFA")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.TransactionID, "txn_"))
	assert.Equal(t, "CARD", result.Method)
}

func TestMockProcessorUniqueTransactions(t *testing.T) {
	processor := &MockProcessor{}

	first, err := processor.Process(2000, "FCFA")
	require.NoError(t, err)
	second, err := processor.Process(2000, "FCFA")
	require.NoError(t, err)

	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}

func TestMockProcessorDeclines(t *testing.T) {
	processor := &MockProcessor{Fail: true}

	_, err := processor.Process(2000, "FCFA")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "declined")
}

func TestNewMockProcessorDefaults(t *testing.T) {
	processor := NewMockProcessor()

	assert.Equal(t, "CARD", processor.Method)
	assert.Positive(t, processor.Delay)
	assert.False(t, processor.Fail)
}
