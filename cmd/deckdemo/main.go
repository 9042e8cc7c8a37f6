package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"

	"github.com/palemoky/five-card/internal/apperrors"
	"github.com/palemoky/five-card/internal/config"
	"github.com/palemoky/five-card/internal/game"
	"github.com/palemoky/five-card/internal/game/card"
	"github.com/palemoky/five-card/internal/logger"
	"github.com/palemoky/five-card/internal/ui/model"
	"github.com/palemoky/five-card/internal/ui/view"
)

// exit 关闭日志文件后退出，os.Exit 不会执行 defer
func exit(code int) {
	logger.Close()
	os.Exit(code)
}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	seed := flag.Uint64("seed", 0, "随机种子，0 表示使用配置或时间")
	interactive := flag.Bool("interactive", false, "交互模式")
	handFlag := flag.String("hand", "", `评估指定的五张牌，例如 "A♠ K♠ Q♠ J♠ 10♠"`)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	if cfg.Log.Dir != "" {
		if err := logger.Init(cfg.Log.Dir); err != nil {
			log.Printf("初始化日志失败: %v", err)
		}
	}
	defer logger.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			exit(2)
		}
	}()

	renderer := view.NewRenderer(cfg.Display.Color, cfg.Display.Columns)

	if *handFlag != "" {
		cards, err := card.ParseCards(*handFlag)
		if err == nil {
			err = game.EvaluateCards(os.Stdout, renderer, cards)
		}
		if err != nil {
			logger.LogError("evaluate %q: %v (code %d)", *handFlag, err, apperrors.CodeOf(err))
			_, _ = os.Stderr.WriteString(renderer.Error(err) + "\n")
			exit(1)
		}
		return
	}

	// 每个进程只播种一次
	var rng *rand.Rand
	if cfg.Game.Seed != 0 {
		rng = card.NewSeededRand(cfg.Game.Seed)
	} else {
		rng = card.DefaultRand()
	}

	if *interactive {
		// 交互模式下日志必须写文件，否则会打乱全屏界面
		p, err := model.NewProgram(model.NewTableModel(rng, renderer), cfg.Log.Dir)
		if err != nil {
			log.Printf("初始化日志失败: %v", err)
			exit(1)
		}
		if _, err := p.Run(); err != nil {
			logger.LogError("interactive mode: %v", err)
			exit(1)
		}
		return
	}

	if err := game.NewGame(rng, os.Stdout, renderer).Run(cfg.Game.LooseDraws); err != nil {
		logger.LogError("demo: %v (code %d)", err, apperrors.CodeOf(err))
	}
}
