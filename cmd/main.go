package main

import (
	"context"
	"time"

	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"TaskManager/internal/config"
	"TaskManager/internal/storage"
	"TaskManager/internal/tasks"
	"TaskManager/internal/ui"
)

func main() {
	// 初始化配置管理器
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatal(err)
	}
	cfg := configManager.GetConfig()

	setupLogging(cfg.Log)

	// 打开存储后端，相对路径放在配置目录下
	storageCfg := cfg.Storage
	storageCfg.SQLite.Path = configManager.ResolvePath(storageCfg.SQLite.Path)
	storageCfg.File.Dir = configManager.ResolvePath(storageCfg.File.Dir)
	ctx := context.Background()
	slots, err := storage.Open(ctx, storageCfg)
	if err != nil {
		log.WithError(err).WithField("backend", storageCfg.Backend).Fatal("open storage")
	}
	defer slots.Close()

	persist := storage.NewPersistence(slots, storageCfg.Slot)
	store := tasks.NewStore(persist)
	store.Initialize(ctx)

	// 创建应用
	myApp := app.New()
	mainWindow := ui.NewMainWindow(myApp, cfg.App.Name, store)
	mainWindow.SetLastSaved(func() (time.Time, bool) {
		return persist.LastSaved(ctx)
	})
	mainWindow.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))

	log.WithFields(log.Fields{
		"backend": storageCfg.Backend,
		"config":  configManager.Path(),
	}).Info("task manager started")
	mainWindow.Show()
}

func setupLogging(cfg config.LogConfig) {
	if cfg.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.WithError(err).Warn("invalid log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
