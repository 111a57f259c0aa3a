package parquet

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
)

func charizard() pokeapi.PokemonResponse {
	return pokeapi.PokemonResponse{
		Id:     6,
		Name:   "charizard",
		Height: 17,
		Weight: 905,
		Types: []pokeapi.PokemonType{
			{Slot: 1, Type: pokeapi.PokemonTypeEntry{Name: "fire"}},
			{Slot: 2, Type: pokeapi.PokemonTypeEntry{Name: "flying"}},
		},
	}
}

func TestToPokemonEmitsRowPerType(t *testing.T) {
	rows, err := ToPokemon(charizard(), 1)
	require.NoError(t, err)
	assert.Equal(t, []Pokemon{
		{Id: 6, Name: "charizard", Weight: 905, Height: 17, Type: "fire", Generation: 1},
		{Id: 6, Name: "charizard", Weight: 905, Height: 17, Type: "flying", Generation: 1},
	}, rows)
}

func TestToPokemonRequiresTypes(t *testing.T) {
	_, err := ToPokemon(pokeapi.PokemonResponse{Name: "missingno"}, 1)
	assert.ErrorIs(t, err, ErrNoTypes)
}

func TestPokemonWriterProducesParquetFile(t *testing.T) {
	w, err := NewPokemonWriter(zap.NewNop().Sugar())
	require.NoError(t, err)
	rows, err := ToPokemon(charizard(), 1)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, w.WritePokemon(&row))
	}
	require.NoError(t, w.Finish())
	assert.Equal(t, 2, w.Rows())

	data, err := io.ReadAll(w.BufferReader())
	require.NoError(t, err)
	require.Equal(t, w.Size(), len(data))
	require.Greater(t, len(data), 8)
	assert.Equal(t, "PAR1", string(data[:4]))
	assert.Equal(t, "PAR1", string(data[len(data)-4:]))
}
