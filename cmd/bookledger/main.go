package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ahinestrog/bookledger/directory"
	"github.com/ahinestrog/bookledger/events"
	"github.com/ahinestrog/bookledger/ledger"
	"github.com/ahinestrog/bookledger/store"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	seed := flag.Bool("seed", false, "cargar el catálogo de prueba")
	publisher := flag.String("publisher", "", "reporte de ventas: id o fragmento del nombre del editor")
	contacts := flag.Bool("contacts-demo", false, "recorrido de prueba del directorio de contactos")
	flag.Parse()

	cfg := LoadConfig()
	log.Info().
		Str("db", cfg.DBPath).
		Str("rabbit", cfg.RabbitURL).
		Msg("starting bookledger")

	must(os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755))
	db, err := store.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	ctx := context.Background()
	ledRepo := ledger.NewRepository(db)
	dirRepo := directory.NewRepository(db)
	must(ledRepo.Migrate(ctx))
	must(dirRepo.Migrate(ctx))

	var ledSvc *ledger.Service
	var dirSvc *directory.Service
	if cfg.RabbitURL != "" {
		rb, err := events.NewRabbit(cfg.RabbitURL, cfg.Exchange)
		must(err)
		defer rb.Close()
		ledSvc = ledger.NewService(ledRepo, rb)
		dirSvc = directory.NewService(dirRepo, rb)
	} else {
		ledSvc = ledger.NewService(ledRepo, nil)
		dirSvc = directory.NewService(dirRepo, nil)
	}
	if *contacts {
		contactsDemo(ctx, dirSvc)
	}

	if *seed {
		st, err := ledSvc.Import(ctx, demoGraph())
		if err != nil {
			if store.IsConstraint(err, store.ConstraintUnique) {
				log.Warn().Msg("demo catalog already loaded")
			} else {
				must(err)
			}
		} else {
			log.Info().Int("sales", st.Sales).Msg("demo catalog loaded")
		}
	}

	if *publisher != "" {
		report(ctx, ledSvc, *publisher)
	}
}

func report(ctx context.Context, svc *ledger.Service, input string) {
	rows, err := svc.SalesByPublisher(ctx, ledger.ParsePublisherRef(input))
	if errors.Is(err, store.ErrNoData) {
		fmt.Println("sin datos para ese editor")
		return
	}
	must(err)

	log.Info().Str("rows", humanize.Comma(int64(len(rows)))).Msg("report ready")
	for _, r := range rows {
		total := humanize.FormatFloat("#,###.##", r.Total.InexactFloat64())
		fmt.Printf("%-30s | %-12s | %10s | %s\n",
			r.Title, r.Shop, total, r.Date.Format("02.01.2006"))
	}
}

// contactsDemo: altas, cambio de nombre con reemplazo de teléfonos,
// búsquedas y baja con cascade.
func contactsDemo(ctx context.Context, svc *directory.Service) {
	anna, err := svc.CreateClient(ctx, "Анна", "Г", "anna-g@mail.ru", []string{"1234567890"})
	if store.IsConstraint(err, store.ConstraintUnique) {
		log.Warn().Msg("contacts demo already loaded")
		return
	}
	must(err)
	harry, err := svc.CreateClient(ctx, "Гарри", "Поттер", "HP@hogwarts.ru", nil)
	must(err)

	_, err = svc.AddPhone(ctx, anna, "0987654321")
	must(err)
	_, err = svc.AddPhone(ctx, harry, "5555555555")
	must(err)

	first := "Рон"
	must(svc.UpdateClient(ctx, anna, directory.ClientPatch{
		FirstName: &first,
		Phones:    []string{"1111111111", "2222222222"},
	}))
	_, err = svc.DeletePhone(ctx, harry, "5555555555")
	must(err)

	for _, c := range []directory.FindCriteria{{FirstName: "Рон"}, {Phone: "1111111111"}} {
		found, err := svc.FindClients(ctx, c)
		must(err)
		for _, cl := range found {
			fmt.Printf("%d | %s %s | %s\n", cl.ID, cl.FirstName, cl.LastName, cl.Email)
		}
	}

	n, err := svc.DeleteClient(ctx, harry)
	must(err)
	log.Info().Int64("deleted", n).Msg("contacts demo done")
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
