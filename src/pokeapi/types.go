package pokeapi

// PokemonListResultEntry is one summary row of the list endpoint.
type PokemonListResultEntry struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type PokemonListResult struct {
	Count   int32                    `json:"count"`
	Next    *string                  `json:"next"`
	Results []PokemonListResultEntry `json:"results"`
}

type PokemonTypeEntry struct {
	Name string `json:"name"`
}

type PokemonType struct {
	Slot int32            `json:"slot"`
	Type PokemonTypeEntry `json:"type"`
}

type PokemonStatEntry struct {
	Name string `json:"name"`
}

type PokemonStat struct {
	BaseStat int32            `json:"base_stat"`
	Stat     PokemonStatEntry `json:"stat"`
}

type PokemonSprites struct {
	FrontDefault string `json:"front_default"`
}

type PokemonResponseSpecies struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// PokemonResponse is the detail record of a single pokemon. Height is in
// decimeters and weight in hectograms.
type PokemonResponse struct {
	Id      int32                  `json:"id"`
	Name    string                 `json:"name"`
	Weight  int32                  `json:"weight"`
	Height  int32                  `json:"height"`
	Sprites PokemonSprites         `json:"sprites"`
	Types   []PokemonType          `json:"types"`
	Stats   []PokemonStat          `json:"stats"`
	Species PokemonResponseSpecies `json:"species"`
}

func (p PokemonResponse) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

type PokemonSpeciesGeneration struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type PokemonSpecies struct {
	Generation PokemonSpeciesGeneration `json:"generation"`
}

type PokemonGeneration struct {
	Id int32 `json:"id"`
}
