package acceptance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashkit/objwalk/internal/datafile"
	"github.com/dashkit/objwalk/internal/testutil"
	"github.com/dashkit/objwalk/pkg/attrpath"
	"github.com/dashkit/objwalk/pkg/objwalk"
)

// TestPipeline_LoadWalkFlatten runs the common end-to-end flow: write a
// figure to disk, load it back, and flatten it to accessor paths.
func TestPipeline_LoadWalkFlatten(t *testing.T) {
	fig := testutil.SampleFigure()
	path := testutil.WriteJSON(t, t.TempDir(), "figure.json", fig)

	doc, err := datafile.Load(path)
	require.NoError(t, err)
	require.Equal(t, fig, doc)

	flat, err := objwalk.Flatten(doc)
	require.NoError(t, err)

	assert.Equal(t, "filter", flat["data[0].transforms[0].type"])
	assert.Equal(t, 480.0, flat["layout.height"])
}

// TestPipeline_SetterPathsFromWalk verifies that segment paths gathered
// during a walk convert to the setter strings a dashboard restyle call
// expects, including root-marker stripping.
func TestPipeline_SetterPathsFromWalk(t *testing.T) {
	fig := testutil.SampleFigure()

	var setters []string
	err := objwalk.Walk(fig["data"], func(key, parent any, path objwalk.Path) error {
		if key != "type" {
			return nil
		}
		full := append([]any{"_fullData"}, append(path.Segments, key)...)
		setters = append(setters, attrpath.MakeSetterPath(full))
		return nil
	}, objwalk.Options{WalkArrays: true})
	require.NoError(t, err)

	assert.Contains(t, setters, "transforms[0].type")
	assert.Contains(t, setters, "transforms[1].type")
}

// TestPipeline_AlignTraceColumns aligns the x columns of the sample
// traces, which have different lengths, into a rectangular table.
func TestPipeline_AlignTraceColumns(t *testing.T) {
	fig := testutil.SampleFigure()
	traces := fig["data"].([]any)

	rows := make([][]any, 0, len(traces))
	for _, tr := range traces {
		col := tr.(map[string]any)["x"].([]any)
		rows = append(rows, col)
	}

	aligned := objwalk.Align(rows)
	require.Len(t, aligned, 2)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, aligned[0])
	assert.Equal(t, []any{1.0, 2.0, nil}, aligned[1])
}
