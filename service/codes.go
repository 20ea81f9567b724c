package service

import (
	"crypto/rand"
	"fmt"
	"log"
	"regexp"

	"foodathome/database"
	"foodathome/models"
)

// 菜单码字母表：大写字母 + 数字，6 位约 21 亿种组合
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength 菜单码长度
const CodeLength = 6

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// GenerateMenuCode 生成一个随机 6 位菜单码
func GenerateMenuCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成菜单码失败: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// IsValidMenuCode 校验菜单码格式
func IsValidMenuCode(code string) bool {
	return codePattern.MatchString(code)
}

// UniqueMenuCode 生成一个当前未被任何公开菜单占用的菜单码
// 最多重试 attempts 次，避免两个厨师的菜单码互相覆盖
func UniqueMenuCode(attempts int) (string, error) {
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		code, err := GenerateMenuCode()
		if err != nil {
			return "", err
		}
		var count int64
		if err := database.DB.Model(&models.PublishedMenu{}).
			Where("code = ?", code).Count(&count).Error; err != nil {
			// 查重失败时直接使用生成的码，保持可用性优先
			log.Printf("警告: 菜单码查重失败: %v", err)
			return code, nil
		}
		if count == 0 {
			return code, nil
		}
		log.Printf("菜单码 %s 已被占用，重新生成（第 %d 次）", code, i+1)
	}
	return "", fmt.Errorf("连续 %d 次生成的菜单码均已被占用", attempts)
}
