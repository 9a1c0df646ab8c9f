package game

import (
	"log"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cuePlayer 音频播放器的最小接口（*audio.Player 满足）
type cuePlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
}

// AudioManager 音效播放
//
// 职责：
//   - 单次音效（攻击）与循环音效（奔跑）的播放
//   - 按 SettingsManager 中的音量与开关控制
//   - 循环音效的淡出：用 gween 补间把音量降到 0 后暂停
//
// 所有方法都在游戏循环的单个 goroutine 中调用。
type AudioManager struct {
	settings *SettingsManager // 可为 nil，此时使用默认设置

	loadOnce func(path string) (cuePlayer, error)
	loadLoop func(path string) (cuePlayer, error)

	loops map[string]cuePlayer
	fades map[string]*gween.Tween
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: 资源管理器（加载音频文件）
//   - sm: 设置管理器，可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	am := newAudioManager(sm)
	am.loadOnce = func(path string) (cuePlayer, error) { return rm.LoadSoundEffect(path) }
	am.loadLoop = func(path string) (cuePlayer, error) { return rm.LoadLoop(path) }
	return am
}

func newAudioManager(sm *SettingsManager) *AudioManager {
	return &AudioManager{
		settings: sm,
		loops:    make(map[string]cuePlayer),
		fades:    make(map[string]*gween.Tween),
	}
}

func (am *AudioManager) current() *Settings {
	if am.settings == nil {
		return DefaultSettings()
	}
	return am.settings.Settings()
}

// PlaySound 从头播放一次音效
//
// 返回是否真正开始播放（音效关闭或加载失败时为 false）。
func (am *AudioManager) PlaySound(path string) bool {
	s := am.current()
	if !s.SoundEnabled || path == "" {
		return false
	}

	player, err := am.loadOnce(path)
	if err != nil {
		log.Printf("[AudioManager] Failed to load sound %s: %v", path, err)
		return false
	}

	player.SetVolume(s.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Failed to rewind sound %s: %v", path, err)
	}
	player.Play()
	return true
}

// StartLoop 开始（或继续）播放循环音效
//
// 已在播放时不会重新开始；正在淡出时取消淡出并恢复音量。
func (am *AudioManager) StartLoop(path string) bool {
	s := am.current()
	if !s.SoundEnabled || path == "" {
		return false
	}

	player, ok := am.loops[path]
	if !ok {
		var err error
		player, err = am.loadLoop(path)
		if err != nil {
			log.Printf("[AudioManager] Failed to load loop %s: %v", path, err)
			return false
		}
		am.loops[path] = player
	}

	delete(am.fades, path)
	player.SetVolume(s.SoundVolume)
	if !player.IsPlaying() {
		player.Play()
	}
	return true
}

// FadeOut 在 d 时间内把循环音效淡出，结束后暂停
//
// 没有在播放或已经在淡出时不做任何事。
func (am *AudioManager) FadeOut(path string, d time.Duration) {
	player, ok := am.loops[path]
	if !ok || !player.IsPlaying() {
		return
	}
	if _, fading := am.fades[path]; fading {
		return
	}

	if d <= 0 {
		am.stopLoop(path, player)
		return
	}
	from := float32(am.current().SoundVolume)
	am.fades[path] = gween.New(from, 0, float32(d.Seconds()), ease.Linear)
}

// Fading 循环音效是否正在淡出
func (am *AudioManager) Fading(path string) bool {
	_, ok := am.fades[path]
	return ok
}

// Update 推进所有淡出补间
//
// 参数：
//   - dt: 距上一帧的秒数
func (am *AudioManager) Update(dt float64) {
	for path, tween := range am.fades {
		player := am.loops[path]
		volume, done := tween.Update(float32(dt))
		if done {
			am.stopLoop(path, player)
			continue
		}
		player.SetVolume(float64(volume))
	}
}

func (am *AudioManager) stopLoop(path string, player cuePlayer) {
	delete(am.fades, path)
	player.Pause()
	player.SetVolume(0)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Failed to rewind loop %s: %v", path, err)
	}
}

// StopAll 立即停止所有循环音效
func (am *AudioManager) StopAll() {
	for path, player := range am.loops {
		am.stopLoop(path, player)
	}
}
