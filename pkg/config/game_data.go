package config

import (
	"fmt"
	"log"

	"github.com/decker502/lawndefense/pkg/embedded"
)

// 游戏数据文件路径
const (
	DifficultyFile = "data/difficulty.yaml"
	PlantsFile     = "data/plants.yaml"
	ZombiesFile    = "data/zombies.yaml"
)

// GameData 一局游戏需要的全部配置
type GameData struct {
	Difficulties *DifficultyConfig
	Plants       *PlantStatsConfig
	Zombies      *ZombieStatsConfig
}

// LoadGameData 从嵌入资源加载难度、植物和僵尸配置
// 文件缺失时使用内置默认值，文件存在但内容非法时返回错误
func LoadGameData() (*GameData, error) {
	data := &GameData{
		Difficulties: DefaultDifficultyConfig(),
		Plants:       DefaultPlantStats(),
		Zombies:      DefaultZombieStats(),
	}

	if embedded.Exists(DifficultyFile) {
		cfg, err := LoadDifficultyConfig(DifficultyFile)
		if err != nil {
			return nil, err
		}
		data.Difficulties = cfg
	} else {
		log.Printf("[Config] %s not found, using built-in presets", DifficultyFile)
	}

	if embedded.Exists(PlantsFile) {
		cfg, err := LoadPlantStats(PlantsFile)
		if err != nil {
			return nil, err
		}
		data.Plants = cfg
	} else {
		log.Printf("[Config] %s not found, using built-in plant stats", PlantsFile)
	}

	if embedded.Exists(ZombiesFile) {
		cfg, err := LoadZombieStats(ZombiesFile)
		if err != nil {
			return nil, err
		}
		data.Zombies = cfg
	} else {
		log.Printf("[Config] %s not found, using built-in zombie stats", ZombiesFile)
	}

	log.Printf("[Config] Loaded %d difficulties, %d plants, %d zombies",
		len(data.Difficulties.Presets), len(data.Plants.Plants), len(data.Zombies.Zombies))
	return data, nil
}

// Validate 确认默认难度存在
func (d *GameData) Validate(difficulty string) error {
	if _, err := d.Difficulties.Preset(difficulty); err != nil {
		return fmt.Errorf("game data: %w", err)
	}
	return nil
}
