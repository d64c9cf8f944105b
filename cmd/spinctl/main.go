// cmd/spinctl/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/tamzrod/spinner-config/internal/codec"
	"github.com/tamzrod/spinner-config/internal/config"
	"github.com/tamzrod/spinner-config/internal/persist"
	"github.com/tamzrod/spinner-config/internal/serial"
	"github.com/tamzrod/spinner-config/internal/settings"
	"github.com/tamzrod/spinner-config/internal/status"
	"github.com/tamzrod/spinner-config/internal/storage"
	"github.com/tamzrod/spinner-config/internal/writer"
	wmodbus "github.com/tamzrod/spinner-config/internal/writer/modbus"
)

const usage = "usage: spinctl <config.yaml> <show|save|load|export|import|reset|status>"

func main() {
	if len(os.Args) < 3 {
		log.Fatal(usage)
	}

	cfgPath, cmd := os.Args[1], os.Args[2]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	d := cfg.Device

	if cmd == "status" {
		if err := printStatus(d.Status); err != nil {
			log.Fatalf("status read failed: %v", err)
		}
		return
	}

	// --------------------
	// Storage (always) + serial (export/import only)
	// --------------------

	eeprom, closeStorage, err := buildStorage(d.Storage)
	if err != nil {
		log.Fatalf("storage open failed: %v", err)
	}
	defer closeStorage()

	var channel persist.Channel
	if cmd == "export" || cmd == "import" {
		port, err := serial.Open(serial.Config{
			Address:  d.Serial.Address,
			BaudRate: d.Serial.BaudRate,
			DataBits: d.Serial.DataBits,
			StopBits: d.Serial.StopBits,
			Parity:   d.Serial.Parity,
			Timeout:  time.Duration(d.Serial.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("serial open failed: %v", err)
		}
		defer port.Close()
		channel = port
	}

	// --------------------
	// Status writer (optional)
	// --------------------

	statusWriter, closeStatus, err := writer.BuildStatusWriter(d.Status)
	if err != nil {
		log.Fatalf("status writer failed: %v", err)
	}
	defer closeStatus()

	// --------------------
	// Boot: restore persisted configuration
	// --------------------

	live := settings.Defaults()
	mgr, err := persist.New(&live, persist.Options{
		Storage:            eeprom,
		Channel:            channel,
		Logger:             log.Default(),
		Verbose:            d.Verbose,
		ImportTimeout:      time.Duration(d.Import.TimeoutMs) * time.Millisecond,
		ImportPollInterval: time.Duration(d.Import.PollIntervalMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("persistence setup failed: %v", err)
	}

	if outcome, err := mgr.LoadFromStorage(); err != nil {
		log.Fatalf("boot load failed: %v", err)
	} else if outcome == codec.VersionMismatchReset {
		log.Printf("stored settings not usable, factory defaults applied")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	snap, opErr := run(ctx, cmd, mgr)

	if statusWriter != nil {
		snap.Config = live
		if err := statusWriter.WriteStatus(snap); err != nil {
			log.Printf("status write failed: %v", err)
		}
	}

	if opErr != nil {
		closeStatus()
		closeStorage()
		log.Fatalf("%s failed: %v", cmd, opErr)
	}
}

// run executes one persistence command and reports it as a status snapshot.
func run(ctx context.Context, cmd string, mgr *persist.Manager) (status.Snapshot, error) {
	var snap status.Snapshot

	switch cmd {
	case "show":
		printConfig(mgr.Config())
		snap.Outcome = status.OutcomeLoaded
		return snap, nil

	case "load":
		outcome, err := mgr.LoadFromStorage()
		if err != nil {
			return rejected(err), err
		}
		snap.Outcome = outcomeCode(outcome)
		snap.BytesTransferred = settings.SettingsSize
		printConfig(mgr.Config())
		return snap, nil

	case "save":
		n, err := mgr.SaveToStorage()
		if err != nil {
			return rejected(err), err
		}
		snap.Outcome = status.OutcomeSaved
		snap.BytesTransferred = uint16(n)
		return snap, nil

	case "reset":
		mgr.Config().FactoryReset()
		n, err := mgr.SaveToStorage()
		if err != nil {
			return rejected(err), err
		}
		snap.Outcome = status.OutcomeDefaults
		snap.BytesTransferred = uint16(n)
		return snap, nil

	case "export":
		n, err := mgr.ExportToChannel()
		if err != nil {
			return rejected(err), err
		}
		snap.Outcome = status.OutcomeExported
		snap.BytesTransferred = uint16(n)
		return snap, nil

	case "import":
		outcome, err := mgr.ImportFromChannel(ctx)
		if err != nil {
			return rejected(err), err
		}
		if outcome == codec.VersionMismatchReset {
			log.Printf("imported settings have a foreign format, factory defaults applied")
		}
		// keep what was imported across power cycles
		if _, err := mgr.SaveToStorage(); err != nil {
			return rejected(err), err
		}
		snap.Outcome = outcomeCode(outcome)
		snap.BytesTransferred = settings.SettingsSize
		printConfig(mgr.Config())
		return snap, nil

	default:
		err := fmt.Errorf("unknown command %q (%s)", cmd, usage)
		return rejected(err), err
	}
}

func buildStorage(sc config.StorageConfig) (persist.Storage, func() error, error) {
	switch sc.Kind {
	case "file":
		f, err := storage.OpenFile(sc.Path, sc.Size)
		if err != nil {
			return nil, nil, err
		}
		return f, func() error {
			if err := f.Sync(); err != nil {
				return err
			}
			return f.Close()
		}, nil
	default:
		return storage.NewMemory(sc.Size, sc.Endurance), func() error { return nil }, nil
	}
}

func printStatus(sc *config.StatusConfig) error {
	if sc == nil {
		return errors.New("no status endpoint configured")
	}

	c, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: sc.Endpoint,
		Timeout:  time.Duration(sc.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer c.Close()

	regs, err := c.ReadRegisters(sc.UnitID, sc.BaseSlot*status.SlotsPerDevice, status.SlotsPerDevice)
	if err != nil {
		return err
	}

	snap, name, err := status.Decode(regs)
	if err != nil {
		return err
	}

	fmt.Printf("device:  %s\n", name)
	fmt.Printf("outcome: %s (error %d, %d bytes)\n",
		status.OutcomeName(snap.Outcome), snap.LastErrorCode, snap.BytesTransferred)
	printConfig(&snap.Config)
	return nil
}

func printConfig(c *settings.Config) {
	g := c.Global
	fmt.Printf("emergency_shutdown=%t sleep_mode=%t soft_start=%t soft_stop=%t\n",
		g.EmergencyShutdown, g.SleepMode, g.SoftStart, g.SoftStop)
	for i, p := range c.Presets {
		fmt.Printf("preset %d: %3d min  %5d rpm\n", i, p.RunTimeMinutes, p.TargetRPM)
	}
}

func outcomeCode(o codec.Outcome) uint16 {
	if o == codec.VersionMismatchReset {
		return status.OutcomeDefaults
	}
	return status.OutcomeLoaded
}

func rejected(err error) status.Snapshot {
	return status.Snapshot{
		Outcome:       status.OutcomeRejected,
		LastErrorCode: errorCode(err),
	}
}

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// Errors exposing Code() win; otherwise the persistence taxonomy applies.
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	return persist.ErrorCode(err)
}
