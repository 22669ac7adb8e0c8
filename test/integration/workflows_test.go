//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/gridpoint-io/nios/pkg/wapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetworkLifecycle exercises create, search, update, and delete against a
// live grid.
func TestNetworkLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	conn := config.Connector(t)
	ctx := context.Background()

	comment := GenerateTestName("integration")

	// 1. Create a network
	ref, err := conn.CreateObject(ctx, "network", map[string]interface{}{
		"network": "10.199.0.0/24",
		"comment": comment,
	})
	require.NoError(t, err, "Failed to create network")

	refString, ok := ref.(string)
	require.True(t, ok, "Create reply should be an object reference")

	defer func() {
		_, _ = conn.DeleteObject(ctx, refString)
	}()

	// 2. Find it again by comment
	result, err := conn.GetObject(ctx, "network",
		map[string]interface{}{"comment": comment},
		&wapi.GetOptions{ReturnFields: []string{"network", "comment"}})
	require.NoError(t, err, "Failed to search for network")

	networks, ok := result.([]interface{})
	require.True(t, ok, "Search reply should be a list")
	require.Len(t, networks, 1)

	network, ok := networks[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "10.199.0.0/24", network["network"])
	assert.Equal(t, comment, network["comment"])

	// 3. Update the comment
	updatedRef, err := conn.UpdateObject(ctx, refString, map[string]interface{}{
		"comment": comment + "-updated",
	})
	require.NoError(t, err, "Failed to update network")
	assert.NotEmpty(t, updatedRef)

	// 4. Delete it
	deletedRef, err := conn.DeleteObject(ctx, refString)
	require.NoError(t, err, "Failed to delete network")
	assert.NotEmpty(t, deletedRef)

	// 5. The search should now come back empty
	result, err = conn.GetObject(ctx, "network",
		map[string]interface{}{"comment": comment}, nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

// TestFunctionCall fetches the next available address from an existing
// network, when one is configured.
func TestFunctionCall(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	conn := config.Connector(t)
	ctx := context.Background()

	result, err := conn.GetObject(ctx, "network", nil, nil)
	require.NoError(t, err, "Failed to list networks")

	networks, ok := result.([]interface{})
	require.True(t, ok)
	if len(networks) == 0 {
		t.Skip("Skipping: grid has no networks to call against")
	}

	network, ok := networks[0].(map[string]interface{})
	require.True(t, ok)

	ref, ok := network["_ref"].(string)
	require.True(t, ok)

	reply, err := conn.CallFunc(ctx, "next_available_ip", ref,
		map[string]interface{}{"num": 1})
	require.NoError(t, err, "Function call failed")

	fields, ok := reply.(map[string]interface{})
	require.True(t, ok, "Function reply should be an object")
	assert.Contains(t, fields, "ips")
}
