package chemi

import "fmt"

// Level is an attraction level from 1 (weakest) to 5 (strongest).
type Level int

const (
	LevelParallel Level = iota + 1
	LevelLukewarm
	LevelFlutter
	LevelStrong
	LevelDestiny
)

// LevelInfo describes how a level is presented.
type LevelInfo struct {
	Level       Level  `json:"level"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var levelInfos = [...]LevelInfo{
	LevelParallel: {Level: LevelParallel, Name: "평행선", Color: "#90A4AE", Description: "각자의 길을 걷는"},
	LevelLukewarm: {Level: LevelLukewarm, Name: "미지근한 기류", Color: "#BDBDBD", Description: "아직은 서먹한"},
	LevelFlutter:  {Level: LevelFlutter, Name: "은근한 설렘", Color: "#FFA726", Description: "자꾸 신경 쓰이는"},
	LevelStrong:   {Level: LevelStrong, Name: "강한 케미", Color: "#FF7043", Description: "만나면 불꽃이 튀는"},
	LevelDestiny:  {Level: LevelDestiny, Name: "운명의 끌림", Color: "#FF1744", Description: "자석처럼 떨어질 수 없는"},
}

// Levels returns every level from strongest to weakest.
func Levels() []LevelInfo {
	out := make([]LevelInfo, 0, len(levelInfos)-1)
	for l := LevelDestiny; l >= LevelParallel; l-- {
		out = append(out, levelInfos[l])
	}
	return out
}

// Info returns the presentation record for l.
func (l Level) Info() LevelInfo {
	if !l.Valid() {
		panic(fmt.Sprintf("chemi: invalid level %d", int(l)))
	}
	return levelInfos[l]
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelParallel && l <= LevelDestiny
}

// LevelForScore maps a 0-100 score to its level.
func LevelForScore(score int) Level {
	switch {
	case score >= 85:
		return LevelDestiny
	case score >= 70:
		return LevelStrong
	case score >= 50:
		return LevelFlutter
	case score >= 30:
		return LevelLukewarm
	default:
		return LevelParallel
	}
}
