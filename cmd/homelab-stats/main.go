// homelab-stats 홈랩 서버 지표를 수집해 포트폴리오 사이트용 JSON 문서를 발행합니다.
//
//	homelab-stats collect --config /etc/homelab-stats.json
//	homelab-stats serve   --config /etc/homelab-stats.json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
