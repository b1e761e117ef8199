package architecture_test

import (
	"testing"

	"github.com/mstrYoda/go-arctest/pkg/arctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mod = `github\.com/Nazarious-ucu/weather-report`

func TestLayeredArchitecture(t *testing.T) {
	arch, err := arctest.New("../")
	require.NoError(t, err)

	err = arch.ParsePackages()
	require.NoError(t, err, "failed to parse packages")

	domainLayer, err := arctest.NewLayer("domain", `^`+mod+`/internal/models`)
	require.NoError(t, err)

	serviceLayer, err := arctest.NewLayer("service",
		`^`+mod+`/internal/services/(weather|metrics|logger)`,
		`^`+mod+`/pkg/logger`,
	)
	require.NoError(t, err)

	handlerLayer, err := arctest.NewLayer("handler", `^`+mod+`/internal/handlers`)
	require.NoError(t, err)

	appLayer, err := arctest.NewLayer("application", `^`+mod+`/internal/(app|config)`)
	require.NoError(t, err)

	layered := arch.NewLayeredArchitecture(domainLayer, serviceLayer, handlerLayer, appLayer)

	err = serviceLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = handlerLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = handlerLayer.DependsOnLayer(serviceLayer)
	assert.NoError(t, err)

	err = appLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = appLayer.DependsOnLayer(serviceLayer)
	assert.NoError(t, err)

	err = appLayer.DependsOnLayer(handlerLayer)
	assert.NoError(t, err)

	violations, err := layered.Check()
	require.NoError(t, err)

	assert.Len(t, violations, 0)

	for _, v := range violations {
		assert.Failf(t, "", "violation: %s", v)
	}
}
