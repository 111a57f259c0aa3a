package parquet

import (
	"errors"

	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
)

// Pokemon is one exported row: a pokemon under one of its types.
type Pokemon struct {
	Id         int32  `parquet:"name=id, type=INT32"`
	Name       string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Weight     int32  `parquet:"name=weight, type=INT32"`
	Height     int32  `parquet:"name=height, type=INT32"`
	Type       string `parquet:"name=type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Generation int32  `parquet:"name=generation, type=INT32"`
}

var ErrNoTypes = errors.New("pokemon has no types")

func ToPokemon(pokemon pokeapi.PokemonResponse, generation int32) ([]Pokemon, error) {
	if len(pokemon.Types) == 0 {
		return nil, ErrNoTypes
	}
	result := make([]Pokemon, 0, len(pokemon.Types))
	for _, name := range pokemon.TypeNames() {
		result = append(result, Pokemon{
			Id:         pokemon.Id,
			Name:       pokemon.Name,
			Weight:     pokemon.Weight,
			Height:     pokemon.Height,
			Type:       name,
			Generation: generation,
		})
	}
	return result, nil
}
