package predprey

import (
	"strconv"

	"predprey/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	census := w.Census()
	pop := w.cfg.Population
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("max_ticks", "Max ticks", w.cfg.MaxTicks),
			},
		},
		{
			Name: "Initial Population",
			Params: []core.Parameter{
				intParam("salmon", "Salmon", pop.Salmon),
				intParam("rabbits", "Rabbits", pop.Rabbits),
				intParam("wolves", "Wolves", pop.Wolves),
				intParam("plants", "Plants", pop.Plants),
			},
		},
		{
			Name:    "Census",
			Summary: w.Outcome().String(),
			Params: []core.Parameter{
				intParam("ticks", "Ticks", census.Ticks),
				intParam("live_plant", "Plants", census.Population(SpeciesPlant)),
				intParam("live_rabbit", "Rabbits", census.Population(SpeciesRabbit)),
				intParam("live_salmon", "Salmon", census.Population(SpeciesSalmon)),
				intParam("live_wolf", "Wolves", census.Population(SpeciesWolf)),
			},
		},
	}
	for _, s := range AllSpecies {
		groups = append(groups, traitsGroup(s))
	}
	return core.ParameterSnapshot{Groups: groups}
}

func traitsGroup(s Species) core.ParameterGroup {
	tr := TraitsOf(s)
	prefix := s.String() + "_"
	params := []core.Parameter{
		intParam(prefix+"breed_interval", "Breed interval", tr.BreedInterval),
	}
	if tr.Starvation > 0 {
		params = append(params, intParam(prefix+"starvation", "Starvation", tr.Starvation))
	}
	if tr.Crowding > 0 {
		params = append(params, intParam(prefix+"crowding", "Crowding", tr.Crowding))
	}
	if len(tr.Prey) > 0 {
		menu := ""
		for i, p := range tr.Prey {
			if i > 0 {
				menu += ","
			}
			menu += p.String()
		}
		params = append(params, core.Parameter{
			Key:   prefix + "prey",
			Label: "Prey",
			Type:  core.ParamTypeString,
			Value: menu,
		})
	}
	return core.ParameterGroup{Name: s.String(), Params: params}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
