package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/alerts"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/audit"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/config"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/events"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/health"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/machine"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/metrics"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/money"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/internal/readmodels"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/broker"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/journal"
	"github.com/Vigneshkumar-Rajasekar/vending-machine/kit/observability"
)

func main() {
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config error", zap.Error(err))
		return
	}

	metricsKit := observability.NewMetrics()
	bus := broker.New(logger)
	eventLog := journal.New()

	var auditSvc *audit.Service
	if cfg.AuditPath != "" {
		auditSvc, err = audit.NewServiceWithFile(logger, cfg.AuditPath)
		if err != nil {
			logger.Error("audit init error", zap.Error(err))
			return
		}
	} else {
		auditSvc = audit.NewService(logger)
	}
	defer func() { _ = auditSvc.Close() }()

	vm, err := machine.New(cfg.SlotCount, cfg.Denominations, bus, eventLog, logger, metricsKit)
	if err != nil {
		logger.Error("machine setup error", zap.Error(err))
		return
	}

	projector := readmodels.NewProjector()
	if err := projector.Replay(context.Background(), eventLog); err != nil {
		logger.Error("read model replay error", zap.Error(err))
		return
	}
	alertSvc := alerts.NewService(logger, vm, cfg.LowChangeThreshold)
	metricsSvc := metrics.NewService(metricsKit)

	healthSvc := health.NewService(cfg.HealthTTL)
	healthSvc.Register("stock", func(ctx context.Context) error {
		for slot := 1; slot <= vm.Slots(); slot++ {
			n, err := vm.SlotCount(slot)
			if err != nil {
				return err
			}
			if n > 0 {
				return nil
			}
		}
		return errors.New("all slots empty")
	})
	healthSvc.Register("change", func(ctx context.Context) error {
		return vm.CanBreakSmallestPrice()
	})

	for _, name := range []string{
		(events.PurchaseInitiated{}).Name(),
		(events.PurchaseRejected{}).Name(),
		(events.CoinsDeposited{}).Name(),
		(events.DepositReversed{}).Name(),
		(events.ProductDispensed{}).Name(),
		(events.ChangeReturned{}).Name(),
	} {
		bus.Subscribe(name, auditSvc.HandleEvent)
	}
	bus.Subscribe((events.CoinsDeposited{}).Name(), projector.Apply)
	bus.Subscribe((events.DepositReversed{}).Name(), projector.Apply)
	bus.Subscribe((events.ProductDispensed{}).Name(), projector.Apply)
	bus.Subscribe((events.ChangeReturned{}).Name(), projector.Apply)
	bus.Subscribe((events.PurchaseRejected{}).Name(), alertSvc.HandleEvent)
	bus.Subscribe((events.ProductDispensed{}).Name(), alertSvc.HandleEvent)
	bus.Subscribe((events.ChangeReturned{}).Name(), alertSvc.HandleEvent)

	simulate(logger, vm)

	logger.Info("metrics snapshot", zap.Any("metrics", metricsSvc.Snapshot()))
	if sales, ok := projector.Sales(1); ok {
		logger.Info("slot sales",
			zap.Int("slot", sales.Slot),
			zap.Int("units_sold", sales.UnitsSold),
			zap.String("revenue", sales.Revenue.String()),
		)
	}
	logger.Info("cash moved", zap.String("balance", projector.Cash().Balance.String()))

	res := healthSvc.Check(context.Background())
	logger.Info("health", zap.Bool("ok", res.OK), zap.Any("checks", res.Checks))
}

// simulate runs the reference scenario: price and stock slot 1, float
// the 0.10 hopper, then buy with a mixed handful of coins including an
// unsupported 2.00.
func simulate(logger *observability.Logger, vm *machine.Machine) {
	ctx := context.Background()

	if err := vm.SetPrice(1, money.MustParse("0.30")); err != nil {
		logger.Error("set price error", zap.Error(err))
		return
	}
	if err := vm.SetSlotCount(1, 5); err != nil {
		logger.Error("set slot count error", zap.Error(err))
		return
	}
	if err := vm.SetCoinCount(money.MustParse("0.10"), 10); err != nil {
		logger.Error("set coin count error", zap.Error(err))
		return
	}

	preview, err := vm.Preview(1)
	if err != nil {
		logger.Error("preview error", zap.Error(err))
		return
	}
	logger.Info("purchase preview",
		zap.Int("slot", preview.Slot),
		zap.String("price", preview.Price.String()),
		zap.Int("remaining", preview.Remaining),
		zap.String("machine_wallet", formatFloat(preview.CoinFloat)),
	)

	inserted := []money.Cents{
		money.MustParse("0.50"),
		money.MustParse("2.00"),
		money.MustParse("0.10"),
		money.MustParse("1.00"),
	}
	receipt, err := vm.Purchase(ctx, 1, inserted)
	if err != nil {
		logger.Error("purchase failed",
			zap.String("kind", machine.RejectionKind(err)),
			zap.Error(err),
		)
		return
	}

	logger.Info("purchase details",
		zap.String("transaction_id", receipt.TransactionID),
		zap.Int("slot", receipt.Slot),
		zap.String("price", receipt.Price.String()),
		zap.String("tendered", receipt.Tendered.String()),
		zap.String("change", formatCoins(receipt.ChangeCoins)),
		zap.String("ejected", formatCoins(receipt.RejectedCoins)),
		zap.String("machine_wallet", formatFloat(vm.CoinFloat())),
	)
}

func formatCoins(coins []money.Cents) string {
	if len(coins) == 0 {
		return "none"
	}
	out := ""
	for i, c := range coins {
		if i > 0 {
			out += ", "
		}
		out += c.String()
	}
	return out
}

func formatFloat(float map[money.Cents]int) string {
	out := ""
	for _, d := range sortedDenominations(float) {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s x%d", d, float[d])
	}
	return out
}

func sortedDenominations(float map[money.Cents]int) []money.Cents {
	out := make([]money.Cents, 0, len(float))
	for d := range float {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}
