package logger

import "github.com/ideamans/go-l10n"

func init() {
	// Register Japanese translations for log messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Server
		"Starting server on %s":     "%s でサーバーを起動します",
		"Server stopped":            "サーバーを停止しました",
		"Failed to start server":    "サーバーの起動に失敗しました",
		"Failed to load config":     "設定の読み込みに失敗しました",
		"Failed to set up server":   "サーバーの準備に失敗しました",
		"SESSION_SECRET is not set": "SESSION_SECRET が設定されていません",
		"Request handled":           "リクエストを処理しました",
		"Server shutdown failed":    "サーバーの停止に失敗しました",
		"No .env file loaded":       ".env ファイルを読み込みませんでした",

		// Content
		"Content index built":            "コンテンツのインデックスを作成しました",
		"Duplicate content path ignored": "重複したコンテンツパスを無視しました",
		"Failed to read content file":    "コンテンツファイルの読み込みに失敗しました",
		"Content reloaded":               "コンテンツを再読み込みしました",
		"Content sync failed":            "コンテンツの同期に失敗しました",

		// Translation
		"Translation lookup failed": "翻訳の存在確認に失敗しました",
		"Locale is not configured":  "ロケールが設定されていません",
	})
}
