package game

import (
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
)

// MaxHighScores 排行榜保留的记录数
const MaxHighScores = 10

// HighScore 一条排行榜记录
type HighScore struct {
	ID        string    `yaml:"id"`
	SessionID string    `yaml:"sessionId"`
	Score     int       `yaml:"score"`
	Level     int       `yaml:"level"`
	Date      time.Time `yaml:"date"`
}

// highScoreTable 排行榜文件结构
type highScoreTable struct {
	Entries []HighScore `yaml:"entries"`
}

// HighScoreManager 排行榜管理器
// 游戏结束时记录最终得分和关卡，按得分降序保留前 MaxHighScores 条
type HighScoreManager struct {
	store   yamlStore
	entries []HighScore
	now     func() time.Time
}

// NewHighScoreManager 创建排行榜管理器并加载已保存的记录
// gdataManager 可为 nil（降级模式，仅内存）；加载失败不是致命错误，从空表开始
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	hm := &HighScoreManager{
		store: yamlStore{manager: gdataManager, object: "highscores", property: "table"},
		now:   time.Now,
	}
	if err := hm.Load(); err != nil {
		log.Printf("[HighScoreManager] Warning: %v (starting empty)", err)
	}
	return hm
}

// Load 重新加载排行榜
func (hm *HighScoreManager) Load() error {
	hm.entries = nil
	var table highScoreTable
	if _, err := hm.store.load(&table); err != nil {
		return err
	}
	hm.entries = table.Entries
	hm.sortAndTrim()
	return nil
}

// Save 保存排行榜，降级模式下不报错
func (hm *HighScoreManager) Save() error {
	return hm.store.save(highScoreTable{Entries: hm.entries})
}

// Record 记录一局的最终成绩并保存
//
// 返回：
//   - int: 名次（从 1 开始），未进入排行榜时为 0
//   - error: 保存失败（记录仍保留在内存中）
func (hm *HighScoreManager) Record(sessionID string, score, level int) (int, error) {
	entry := HighScore{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Score:     score,
		Level:     level,
		Date:      hm.now(),
	}
	hm.entries = append(hm.entries, entry)
	hm.sortAndTrim()

	rank := 0
	for i, e := range hm.entries {
		if e.ID == entry.ID {
			rank = i + 1
			break
		}
	}
	log.Printf("[HighScoreManager] Recorded score %d (level %d), rank %d", score, level, rank)

	return rank, hm.Save()
}

// Entries 返回排行榜副本（得分降序）
func (hm *HighScoreManager) Entries() []HighScore {
	out := make([]HighScore, len(hm.entries))
	copy(out, hm.entries)
	return out
}

// Best 返回最高分，没有记录时为 0
func (hm *HighScoreManager) Best() int {
	if len(hm.entries) == 0 {
		return 0
	}
	return hm.entries[0].Score
}

// sortAndTrim 按得分降序排序（同分时关卡高者、时间早者在前），保留前 MaxHighScores 条
func (hm *HighScoreManager) sortAndTrim() {
	sort.SliceStable(hm.entries, func(i, j int) bool {
		a, b := hm.entries[i], hm.entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return a.Date.Before(b.Date)
	})
	if len(hm.entries) > MaxHighScores {
		hm.entries = hm.entries[:MaxHighScores]
	}
}
