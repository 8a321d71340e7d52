//go:build scenario

package sim

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a scripted simulation run: a seeded world, a weekly plan
// and a sequence of advances and assertions.
type Scenario struct {
	Name  string
	Steps []Step
}

type Step struct {
	Kind string
	Args map[string]any
}

func loadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerLuaTypes(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerLuaTypes(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "world", Function: scenarioWorld},
	{Name: "plan", Function: scenarioPlan},
	{Name: "suspend", Function: scenarioSuspend},
	{Name: "injure", Function: scenarioInjure},
	{Name: "advance", Function: scenarioAdvance},
	{Name: "assert_week", Function: scenarioAssertWeek},
	{Name: "assert_season", Function: scenarioAssertSeason},
	{Name: "assert_bounds", Function: scenarioAssertBounds},
	{Name: "assert_determinism", Function: scenarioAssertDeterminism},
	{Name: "assert_suspension", Function: scenarioAssertSuspension},
}

func scenarioWorld(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	appendStep(scenario, "world", tableToMap(state, 2))
	return 0
}

func scenarioPlan(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	appendStep(scenario, "plan", map[string]any{"activities": tableToGo(state, 2)})
	return 0
}

func scenarioSuspend(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckInteger(state, 2)
	weeks := lua.CheckInteger(state, 3)
	appendStep(scenario, "suspend", map[string]any{"player": player, "weeks": weeks})
	return 0
}

func scenarioInjure(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckInteger(state, 2)
	weeks := lua.CheckInteger(state, 3)
	appendStep(scenario, "injure", map[string]any{"player": player, "weeks": weeks})
	return 0
}

func scenarioAdvance(state *lua.State) int {
	scenario := checkScenario(state)
	weeks := lua.OptInteger(state, 2, 1)
	appendStep(scenario, "advance", map[string]any{"weeks": weeks})
	return 0
}

func scenarioAssertWeek(state *lua.State) int {
	scenario := checkScenario(state)
	week := lua.CheckInteger(state, 2)
	appendStep(scenario, "assert_week", map[string]any{"week": week})
	return 0
}

func scenarioAssertSeason(state *lua.State) int {
	scenario := checkScenario(state)
	season := lua.CheckInteger(state, 2)
	appendStep(scenario, "assert_season", map[string]any{"season": season})
	return 0
}

func scenarioAssertBounds(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "assert_bounds", nil)
	return 0
}

func scenarioAssertDeterminism(state *lua.State) int {
	scenario := checkScenario(state)
	weeks := lua.OptInteger(state, 2, 1)
	appendStep(scenario, "assert_determinism", map[string]any{"weeks": weeks})
	return 0
}

func scenarioAssertSuspension(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckInteger(state, 2)
	weeks := lua.CheckInteger(state, 3)
	appendStep(scenario, "assert_suspension", map[string]any{"player": player, "weeks": weeks})
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) {
	if scenario == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

func tableToGo(state *lua.State, index int) any {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
