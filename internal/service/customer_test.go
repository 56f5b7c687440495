package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"self-order-agent/internal/model"
)

func TestCollectCustomerInfoNameOnly(t *testing.T) {
	svc := NewCustomerService()

	res := svc.CollectCustomerInfo("Ann", "", "")

	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, "Ann", res.CustomerInfo.Name)
	assert.Empty(t, res.CustomerInfo.Email)
	assert.Empty(t, res.CustomerInfo.Phone)
	assert.Contains(t, res.Message, "Ann")

	_, err := uuid.Parse(res.CustomerInfo.SessionID)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), res.CustomerInfo.Timestamp, time.Minute)

	// Absent fields must not appear in the serialized payload the agent
	// runtime sees.
	raw, err := json.Marshal(res.CustomerInfo)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "email")
	assert.NotContains(t, m, "phone")
	assert.Contains(t, m, "session_id")
	assert.Contains(t, m, "timestamp")
}

func TestCollectCustomerInfoAllFields(t *testing.T) {
	svc := NewCustomerService()

	res := svc.CollectCustomerInfo("Bob", "bob@example.com", "+62-811-000")

	assert.Equal(t, "bob@example.com", res.CustomerInfo.Email)
	assert.Equal(t, "+62-811-000", res.CustomerInfo.Phone)
}

func TestCollectCustomerInfoFreshSessionPerCall(t *testing.T) {
	svc := NewCustomerService()

	first := svc.CollectCustomerInfo("Ann", "", "")
	second := svc.CollectCustomerInfo("Ann", "", "")

	assert.NotEqual(t, first.CustomerInfo.SessionID, second.CustomerInfo.SessionID)
}
