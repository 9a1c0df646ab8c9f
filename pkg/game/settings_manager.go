package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 玩家偏好设置（不属于游戏进度，跨次启动保留）
type Settings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// gdata 存储位置
const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// SettingsManager 负责设置的加载、保存与修改
//
// gdata 管理器为 nil 时进入降级模式：设置只保存在内存中，Save 不报错。
type SettingsManager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 加载失败不是致命错误：记录日志后使用默认设置。
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Failed to load settings, using defaults: %v", err)
	}
	return sm
}

// Load 从 gdata 读取设置；没有存档时保持默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (volume=%.2f, sound=%v, fullscreen=%v)",
		loaded.SoundVolume, loaded.SoundEnabled, loaded.Fullscreen)
	return nil
}

// Save 把当前设置写入 gdata
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings 当前设置
func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

// SetSoundVolume 设置音效音量（限制在 0.0 ~ 1.0），需调用 Save 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关，需调用 Save 持久化
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound 切换音效开关并立即保存
func (sm *SettingsManager) ToggleSound() (bool, error) {
	sm.SetSoundEnabled(!sm.settings.SoundEnabled)
	return sm.settings.SoundEnabled, sm.Save()
}

// AdjustVolume 按 delta 调整音量并立即保存，返回调整后的音量
func (sm *SettingsManager) AdjustVolume(delta float64) (float64, error) {
	// 保留两位小数，避免多次调整累积浮点误差
	sm.SetSoundVolume(math.Round((sm.settings.SoundVolume+delta)*100) / 100)
	return sm.settings.SoundVolume, sm.Save()
}

// ToggleFullscreen 切换全屏并立即保存
//
// 返回切换后的状态；保存失败时状态仍然切换，错误交给调用方记录。
func (sm *SettingsManager) ToggleFullscreen() (bool, error) {
	sm.settings.Fullscreen = !sm.settings.Fullscreen
	return sm.settings.Fullscreen, sm.Save()
}

func clampVolume(volume float64) float64 {
	return max(0.0, min(1.0, volume))
}
