package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/configs"
)

func defaultGeneratorConfig() configs.GeneratorConfig {
	return configs.GeneratorConfig{
		Seed:               3,
		WindowDays:         7,
		PresenceRate:       0.9,
		FlatMin:            25,
		FlatMax:            30,
		StreamMin:          15,
		StreamMax:          20,
		RegistrationPrefix: "2024",
		Timezone:           "UTC",
		MarkedTime:         "08:00:00",
	}
}

func TestGenerateFromConfig(t *testing.T) {
	doc, seed, err := GenerateFromConfig(defaultGeneratorConfig(), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), seed)
	assert.Len(t, doc.Attendance, 7)
	assert.Len(t, doc.Stats.Cached, 1)

	_, seed, err = GenerateFromConfig(defaultGeneratorConfig(), 9, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9), seed)
}

func TestGenerateFromConfig_SeedReproducesStudents(t *testing.T) {
	a, _, err := GenerateFromConfig(defaultGeneratorConfig(), 0, nil)
	require.NoError(t, err)
	b, _, err := GenerateFromConfig(defaultGeneratorConfig(), 0, nil)
	require.NoError(t, err)

	sa, sb := a.StudentsInOrder(), b.StudentsInOrder()
	require.Equal(t, len(sa), len(sb))
	for i := range sa {
		assert.Equal(t, sa[i].ID, sb[i].ID)
		assert.Equal(t, sa[i].Name, sb[i].Name)
	}
}

func TestGenerateFromConfig_Invalid(t *testing.T) {
	cfg := defaultGeneratorConfig()
	cfg.StreamMin, cfg.StreamMax = 5, 1
	_, _, err := GenerateFromConfig(cfg, 0, nil)
	assert.Error(t, err)
}
