package cobaya

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubfolderFor(t *testing.T) {
	tests := []struct {
		kind ComponentKind
		want string
	}{
		{KindSampler, "samplers"},
		{KindTheory, "theories"},
		{KindLikelihood, "likelihoods"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := SubfolderFor(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubfolderForEveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		folder, err := SubfolderFor(kind)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, folder, kind)
	}
}

func TestSubfolderForUnknownKind(t *testing.T) {
	for _, kind := range []ComponentKind{"", "prior", "Sampler", "likelihoods"} {
		t.Run(string(kind), func(t *testing.T) {
			_, err := SubfolderFor(kind)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownKind))

			var kindErr *UnknownKindError
			require.True(t, errors.As(err, &kindErr))
			assert.Equal(t, string(kind), kindErr.Kind)
		})
	}
}

func TestIsReservedAttribute(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"input_params", true},
		{"output_params", true},
		{"install_options", true},
		{"bibtex_file", true},
		{"file_base_name", true},
		{"arbitrary_unrelated_name", false},
		{"params", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReservedAttribute(tt.name))
		})
	}
}

func TestRegistryAccessorsReturnCopies(t *testing.T) {
	r := NewRegistry()

	kinds := r.Kinds()
	kinds[0] = "mutated"
	assert.Equal(t, KindSampler, r.Kinds()[0])

	order := r.DumpOrder()
	order[0] = "mutated"
	assert.Equal(t, "theory", r.DumpOrder()[0])

	tags := r.ParameterTags()
	tags[0] = "mutated"
	assert.Equal(t, TagPrior, r.ParameterTags()[0])
}

func TestRegistryReservedAttributesSorted(t *testing.T) {
	assert.Equal(t, []string{
		"bibtex_file", "file_base_name", "input_params", "install_options", "output_params",
	}, NewRegistry().ReservedAttributes())
}

func TestRegistryDumpOrder(t *testing.T) {
	assert.Equal(t, []string{"theory", "likelihood", "prior", "params", "sampler", "post"}, DumpOrder())
}

func TestDefaultConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Registry, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Default()
			_, _ = SubfolderFor(KindTheory)
			_ = IsReservedAttribute("input_params")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, Default(), r)
	}
}
