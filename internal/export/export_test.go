package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"toolbox/internal/domain"
	"toolbox/internal/export"
)

const history = `[
  {"id": "a", "bmi": 22.9, "weight_kg": 70, "note": null},
  {"id": "b", "bmi": 24.5, "weight_kg": 75}
]`

func TestConvert_YAML(t *testing.T) {
	out, err := export.Convert([]byte(history), export.YAML)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(out, &got))
	want := []map[string]any{
		{"id": "a", "bmi": 22.9, "weight_kg": 70},
		{"id": "b", "bmi": 24.5, "weight_kg": 75},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, string(out), "70.0")
}

func TestConvert_TOMLWrapsArrays(t *testing.T) {
	out, err := export.Convert([]byte(history), export.TOML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[[records]]")

	var got struct {
		Records []struct {
			ID       string  `toml:"id"`
			BMI      float64 `toml:"bmi"`
			WeightKg int     `toml:"weight_kg"`
		} `toml:"records"`
	}
	require.NoError(t, toml.Unmarshal(out, &got))
	require.Len(t, got.Records, 2)
	assert.Equal(t, "b", got.Records[1].ID)
	assert.Equal(t, 75, got.Records[1].WeightKg)
}

func TestConvert_TOMLObject(t *testing.T) {
	out, err := export.Convert([]byte(`{"bill": 50, "tip_pct": 15.5}`), export.TOML)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "records")
	assert.Contains(t, string(out), "bill = 50")
}

func TestConvert_Errors(t *testing.T) {
	_, err := export.Convert([]byte("{not json"), export.YAML)
	assert.True(t, domain.IsKind(err, domain.KindMalformed))

	_, err = export.ParseFormat("xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f, err := export.ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, export.YAML, f)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.json")
	require.NoError(t, os.WriteFile(path, []byte(history), 0o600))

	var buf bytes.Buffer
	require.NoError(t, export.File(path, export.YAML, &buf))
	assert.Contains(t, buf.String(), "id: a")

	err := export.File(filepath.Join(t.TempDir(), "missing.json"), export.YAML, &buf)
	assert.True(t, domain.IsKind(err, domain.KindIO))
}

func TestConvert_KeepsLargeIntegers(t *testing.T) {
	out, err := export.Convert([]byte(`{"value": 12200160415121876738, "n": 93}`), export.YAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "value: 12200160415121876738")
	assert.Contains(t, string(out), "n: 93")
}

func TestConvert_TOMLLargeIntegerAsString(t *testing.T) {
	out, err := export.Convert([]byte(`{"value": 12200160415121876738}`), export.TOML)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, toml.Unmarshal(out, &got))
	assert.Equal(t, "12200160415121876738", got["value"])
}
