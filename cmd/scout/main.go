// Package main provides the career CLI: create a save, advance the
// simulation week by week, and inspect the world the scout lives in.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/touchline/internal/platform/config"
	"github.com/louisbranch/touchline/internal/sim/domain"
	"github.com/louisbranch/touchline/internal/sim/rng"
	"github.com/louisbranch/touchline/internal/sim/tick"
	"github.com/louisbranch/touchline/internal/storage"
	"github.com/louisbranch/touchline/internal/storage/sqlite"
	"github.com/louisbranch/touchline/internal/worldgen"
)

type envConfig struct {
	DBPath string `env:"TOUCHLINE_DB_PATH" envDefault:"touchline.db"`
	Save   string `env:"TOUCHLINE_SAVE" envDefault:"career"`
}

func main() {
	var (
		saveName  string
		newCareer bool
		seed      int64
		advance   int
		report    bool
		list      bool
		remove    bool
		scoutName string
	)

	flag.StringVar(&saveName, "save", "", "save name (default: TOUCHLINE_SAVE or \"career\")")
	flag.BoolVar(&newCareer, "new", false, "start a new career")
	flag.Int64Var(&seed, "seed", 0, "world seed for a new career (0 = from clock)")
	flag.IntVar(&advance, "advance", 0, "number of weeks to simulate")
	flag.BoolVar(&report, "report", false, "print the career report")
	flag.BoolVar(&list, "list", false, "list saved careers")
	flag.BoolVar(&remove, "delete", false, "delete the save")
	flag.StringVar(&scoutName, "scout", "", "scout name for a new career (default: generated)")
	flag.Parse()

	var cfg envConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("config: %v", err)
	}
	if saveName == "" {
		saveName = cfg.Save
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		config.Exitf("open store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	ctx := context.Background()
	printer := message.NewPrinter(language.English)

	switch {
	case list:
		if err := listSaves(ctx, store, printer); err != nil {
			config.Exitf("list saves: %v", err)
		}
	case remove:
		if err := store.Delete(ctx, saveName); err != nil {
			config.Exitf("delete save %s: %v", saveName, err)
		}
		fmt.Printf("deleted %s\n", saveName)
	case newCareer:
		if err := startCareer(ctx, store, saveName, scoutName, seed); err != nil {
			config.Exitf("new career: %v", err)
		}
		fallthrough
	default:
		save, err := store.Get(ctx, saveName)
		if err != nil {
			config.Exitf("load save %s: %v (use -new to start one)", saveName, err)
		}
		if advance > 0 {
			save, err = advanceWeeks(save, advance)
			if err != nil {
				config.Exitf("advance: %v", err)
			}
			if err := store.Put(ctx, save); err != nil {
				config.Exitf("store save: %v", err)
			}
		}
		if report || advance > 0 {
			printReport(save, printer)
		}
	}
}

func startCareer(ctx context.Context, store storage.SaveStore, name, scoutName string, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := worldgen.Build(rng.New(seed), worldgen.Options{ScoutName: scoutName})
	log.Printf("new career %q: seed %d, %d players across %d leagues",
		name, seed, len(state.Players), len(state.Leagues))
	return store.Put(ctx, storage.Save{Name: name, Seed: seed, State: state})
}

// advanceWeeks runs the weekly tick loop. Each week draws from an RNG
// seeded by the master seed plus the week's position in the career, so
// replaying a save always reproduces the same history.
func advanceWeeks(save storage.Save, weeks int) (storage.Save, error) {
	state := save.State
	for i := 0; i < weeks; i++ {
		r := rng.New(tickSeed(save.Seed, state.Season, state.Week))
		result, err := tick.ComputeTick(state, r)
		if err != nil {
			return save, fmt.Errorf("week %d of season %d: %w", state.Week, state.Season, err)
		}
		state = tick.CommitTick(state, result)
	}
	save.State = state
	return save, nil
}

func tickSeed(master int64, season, week int) int64 {
	return master + int64(season)*1_000_000 + int64(week)
}

func listSaves(ctx context.Context, store storage.SaveStore, printer *message.Printer) error {
	metas, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("no saved careers")
		return nil
	}
	for _, meta := range metas {
		printer.Printf("%-20s %s  season %d week %2d  (seed %d, %s)\n",
			meta.Name, meta.ScoutName, meta.Season, meta.Week, meta.Seed,
			meta.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printReport(save storage.Save, printer *message.Printer) {
	state := save.State
	scout := state.Scout

	fmt.Printf("== %s, season %d week %d ==\n", scout.Name, state.Season, state.Week)
	printer.Printf("in %s | fatigue %.0f | reputation %.0f | xp %d\n",
		scout.CurrentCountry, scout.Fatigue, scout.Reputation, scout.XP)

	know := state.Knowledge[scout.CurrentCountry]
	printer.Printf("local knowledge %.0f | %d insights | %d contacts | %d hidden leagues found\n",
		know.Level, len(know.Insights), len(know.Contacts), len(know.HiddenLeagues))

	for _, leagueID := range sortedVisibleLeagues(state, scout.CurrentCountry) {
		league := state.Leagues[leagueID]
		fmt.Printf("\n%s\n", league.Name)
		for i, row := range league.Standings {
			printer.Printf("%2d. %-28s %2d pts (%d-%d-%d, %d:%d)\n",
				i+1, clubName(state, row.ClubID), row.Points,
				row.Won, row.Drawn, row.Lost, row.GoalsFor, row.GoalsAgainst)
		}
	}

	if len(state.UnsignedYouth) > 0 {
		fmt.Printf("\n%d unsigned youth prospects on the radar\n", len(state.UnsignedYouth))
	}

	if tail := inboxTail(state.Inbox, 5); len(tail) > 0 {
		fmt.Println("\nrecent messages:")
		for _, msg := range tail {
			fmt.Printf("  [s%d w%d %s] %s\n", msg.Season, msg.Week, msg.Category, msg.Subject)
		}
	}
}

func sortedVisibleLeagues(state domain.GameState, country string) []string {
	var ids []string
	for id, league := range state.Leagues {
		if league.Country != country {
			continue
		}
		if league.Hidden && !state.Knowledge[country].HasHiddenLeague(id) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func clubName(state domain.GameState, id string) string {
	if c, ok := state.Clubs[id]; ok {
		return c.Name
	}
	return id
}

func inboxTail(inbox []domain.Message, n int) []domain.Message {
	if len(inbox) <= n {
		return inbox
	}
	return inbox[len(inbox)-n:]
}
