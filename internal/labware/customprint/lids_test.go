package customprint

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/labwarego/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralLid(t *testing.T) {
	t.Parallel()

	lid := GeneralLid("lid_1")

	want := &resource.Lid{
		Resource: resource.Resource{
			Name:     "lid_1",
			SizeX:    139.8,
			SizeY:    95.4,
			SizeZ:    10.05,
			Category:    resource.CategoryLid,
			Model:       "General_lid",
			Description: "3D printed",
		},
		NestingZHeight: 6.9,
	}
	if diff := cmp.Diff(want, lid); diff != "" {
		t.Errorf("GeneralLid() mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneralLid_ConstantsIndependentOfName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"lid_1", "", "a very long name with spaces", "蓋"} {
		t.Run(fmt.Sprintf("name=%q", name), func(t *testing.T) {
			lid := GeneralLid(name)

			assert.Equal(t, name, lid.Name)
			assert.Equal(t, 139.8, lid.SizeX)
			assert.Equal(t, 95.4, lid.SizeY)
			assert.Equal(t, 10.05, lid.SizeZ)
			assert.Equal(t, 6.9, lid.NestingZHeight)
			assert.Equal(t, "General_lid", lid.Model)
			assert.Equal(t, "3D printed", lid.Description)
			assert.Nil(t, lid.Location)
		})
	}
}

func TestGeneralLid_IndependentValues(t *testing.T) {
	t.Parallel()

	a := GeneralLid("lid_1")
	b := GeneralLid("lid_1")

	require.NotSame(t, a, b)
	assert.True(t, cmp.Equal(a, b))

	a.Location = &resource.Coordinate{Z: 1}
	a.Name = "renamed"
	assert.Equal(t, "lid_1", b.Name)
	assert.Nil(t, b.Location)
}

func TestGeneralLid_IsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, GeneralLid("lid_1").Validate())
}

func TestGeneralLid_Concurrent(t *testing.T) {
	t.Parallel()

	const n = 64
	lids := make([]*resource.Lid, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lids[i] = GeneralLid(fmt.Sprintf("lid_%d", i))
		}(i)
	}
	wg.Wait()

	for i, lid := range lids {
		assert.Equal(t, fmt.Sprintf("lid_%d", i), lid.Name)
		assert.Equal(t, 6.9, lid.NestingZHeight)
	}
}
