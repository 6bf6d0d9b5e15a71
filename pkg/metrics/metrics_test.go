package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstone-app/sunstone-api/pkg/metrics"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))

	// Un segundo registro en el mismo registry es un error
	assert.Error(t, metrics.Register(reg))

	metrics.SuggestionsEmitted.WithLabelValues("birthday").Inc()
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.SuggestionsEmitted.WithLabelValues("birthday")), 1.0)

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "sunstone_suggestions_emitted_total" {
			found = true
		}
	}
	assert.True(t, found)
}
