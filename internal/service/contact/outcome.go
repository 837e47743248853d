package contact

// Outcome 실패해도 전체 결과에 영향을 주지 않는 단계(행 기록, 자동 응답)의 처리 결과입니다.
type Outcome struct {
	Step Step

	// Skipped 설정상 비활성화되어 실행하지 않은 경우 true
	Skipped bool

	// Err 실행했지만 실패한 경우의 *StepError
	Err error
}

// OK 단계가 실행되어 성공했는지 여부
func (o Outcome) OK() bool {
	return !o.Skipped && o.Err == nil
}

func skipped(step Step) Outcome {
	return Outcome{Step: step, Skipped: true}
}

func completed(step Step, err error) Outcome {
	if err != nil {
		return Outcome{Step: step, Err: &StepError{Step: step, Cause: err}}
	}
	return Outcome{Step: step}
}
