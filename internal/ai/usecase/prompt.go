package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/pkg/gemini"
)

const generateTemperature = 0.1

// todoSchema constrains extraction output to the todo record contract.
var todoSchema = gemini.Schema{
	"type": "object",
	"properties": gemini.Schema{
		"title": gemini.Schema{
			"type":        "string",
			"description": "할 일의 제목 (간결하게)",
		},
		"description": gemini.Schema{
			"type":        "string",
			"description": "할 일의 상세 설명",
		},
		"due_date": gemini.Schema{
			"type":        "string",
			"description": "마감일 (ISO 8601 형식: YYYY-MM-DDTHH:mm:ss+09:00) - 필수",
		},
		"priority": gemini.Schema{
			"type":        "string",
			"enum":        []string{"high", "medium", "low"},
			"description": "우선순위 (high: 긴급/중요, medium: 보통, low: 낮음)",
		},
		"category": gemini.Schema{
			"type":        "array",
			"items":       gemini.Schema{"type": "string"},
			"description": `카테고리 배열 (최소 1개 필수, 예: ["업무"], ["개인", "건강"])`,
		},
	},
	"required": []string{"title", "due_date", "priority", "category"},
}

// analysisSchema constrains analysis output to the analysis contract.
var analysisSchema = gemini.Schema{
	"type": "object",
	"properties": gemini.Schema{
		"summary": gemini.Schema{
			"type":        "string",
			"description": "전체 요약 (한국어, 친근한 문체)",
		},
		"urgentTasks": gemini.Schema{
			"type":        "array",
			"items":       gemini.Schema{"type": "string"},
			"description": "긴급 작업 목록 (제목만, 최대 5개)",
		},
		"insights": gemini.Schema{
			"type":        "array",
			"items":       gemini.Schema{"type": "string"},
			"description": "인사이트 3-5개 (구체적이고 실행 가능한)",
		},
		"recommendations": gemini.Schema{
			"type":        "array",
			"items":       gemini.Schema{"type": "string"},
			"description": "추천사항 3-5개 (구체적이고 실행 가능한)",
		},
	},
	"required": []string{"summary", "urgentTasks", "insights", "recommendations"},
}

// generatePromptTemplate encodes the deterministic extraction rules:
// given the same input and date context, the expected output is the
// same. Placeholders: current date, time, weekday, full timestamp,
// normalized user input, then the current date again for the 오늘 rule.
const generatePromptTemplate = `당신은 한국어 자연어 입력을 구조화된 할 일 데이터로 변환하는 AI 어시스턴트입니다.

**현재 날짜/시간 정보**:
- 날짜: %s
- 시각: %s
- 요일: %s
- 전체: %s

**사용자 입력**: "%s"

다음 규칙을 **정확히** 따라 할 일 데이터를 생성해주세요:

## 1. 날짜 처리 규칙 (반드시 준수)
- "오늘" → %s
- "내일" → 현재 날짜 + 1일
- "모레" → 현재 날짜 + 2일
- "이번 주 금요일" → 가장 가까운 금요일
- **"다음 주까지", "다음주까지"** → 다음 주 일요일 (다음 주의 마지막 날)
- "다음 주 월요일" → 다음 주의 월요일
- "월요일", "화요일" 등 요일만 언급 → 다음 해당 요일
- 날짜 미명시 → 우선순위에 따라 기본값 설정
  * high → 내일
  * medium → 3일 후
  * low → 7일 후

## 2. 시간 처리 규칙 (반드시 준수)
- "아침" → 09:00
- "점심" → 12:00
- "오후" → 14:00
- "저녁" → 18:00
- "밤" → 21:00
- "오전 X시" → 0X:00 (예: 오전 9시 → 09:00)
- "오후 X시" → 1X:00 (예: 오후 3시 → 15:00)
- **중요**: "오늘 ~까지", "오늘 중", "오늘 안에" 등 오늘 마감이면서 시간 미명시 → **23:59** (당일 자정)
- 기타 시간 미명시 → **09:00 기본값**

## 3. 우선순위 키워드 (반드시 준수)
- **high**: "급하게", "중요한", "빨리", "꼭", "반드시", "긴급", "시급"
- **medium**: "보통", "적당히", 또는 키워드 없음 (기본값)
- **low**: "여유롭게", "천천히", "언젠가", "나중에"

## 4. 카테고리 분류 키워드 (반드시 준수 - 필수 항목!)
**중요**: 카테고리는 **반드시 1개 이상** 포함해야 합니다!

- **업무**: "회의", "보고서", "프로젝트", "업무", "미팅", "발표", "제안서", "문서"
- **개인**: "쇼핑", "친구", "가족", "개인", "약속", "모임"
- **건강**: "운동", "병원", "건강", "요가", "헬스", "조깅", "산책"
- **학습**: "공부", "책", "강의", "학습", "인강", "세미나", "강좌", "과제", "기획", "수업", "교육"
- **기타**: 위 카테고리에 해당하지 않으면 "기타" 사용

**분류 우선순위**:
1. 키워드가 명확히 일치하면 해당 카테고리 사용
2. "과제", "기획" 등 학습/교육 관련 → ["학습"]
3. 여러 카테고리에 해당하면 최대 2개까지 포함
4. 판단이 어려우면 → ["기타"]

## 5. 출력 형식 (반드시 준수)
- title: 간결한 제목 (동사형 어미 제거)
- description: 부가 설명 (선택)
- due_date: YYYY-MM-DDTHH:mm:ss+09:00
- priority: high | medium | low
- category: ["카테고리1", "카테고리2"]

**중요 사항**:
- due_date는 가능한 한 **항상 포함**
- 날짜/시간 규칙을 **정확히** 따를 것
- 우선순위 키워드를 **엄격히** 적용
- 카테고리는 키워드 기반으로 **정확히** 분류

이제 사용자 입력을 변환해주세요.`

// buildGeneratePrompt embeds the current KST date/time context so
// relative date vocabulary resolves deterministically.
func buildGeneratePrompt(input string, now time.Time) string {
	n := now.In(kst)
	currentDate := n.Format("2006-01-02")
	currentTime := n.Format("15:04")
	currentDateTime := formatKST(n)

	return fmt.Sprintf(generatePromptTemplate,
		currentDate,
		currentTime,
		weekdayKorean(n),
		currentDateTime,
		input,
		currentDate,
	)
}

const analyzePromptHeader = `당신은 할 일 관리 전문가이자 생산성 코치입니다. 사용자의 할 일 목록을 깊이 있게 분석하고, 실행 가능하며 동기부여가 되는 조언을 제공해주세요.

**분석 기간**: %s

**할 일 목록 데이터**:
%s

**통계**:
- 전체 할 일: %d개
- 완료: %d개 (%.1f%%)
- 미완료: %d개
- 우선순위 분포: 높음 %d개, 보통 %d개, 낮음 %d개
- 카테고리 분포: %s
- 마감일 지난 할 일: %d개
- 오늘 마감: %d개
- 시간대 분포: 오전 %d개, 오후 %d개, 저녁 %d개

## 분석 가이드라인

### 1. 완료율 분석
- 완료율 (%.1f%%)을 평가하고 격려
- 우선순위별 완료 패턴 파악
- 완료율이 높으면 칭찬, 낮으면 격려와 함께 개선 방향 제시

### 2. 시간 관리 분석
- 마감일 준수율과 연기된 할 일의 패턴 파악
- 시간대별 업무 집중도 분석 (오전/오후/저녁 중 어디에 집중되어 있는지)

### 3. 생산성 패턴
- 가장 생산적인 시간대 도출 (완료된 할 일의 시간대 분석)
- 자주 미루는 작업 유형 식별 (미완료 + 마감일 지난 작업의 공통점)
- 업무 과부하 여부 판단

%s

## 출력 형식

1. **summary** (1-2문장): 완료율과 가장 중요한 특징을 포함한 요약, 긍정적이고 격려하는 톤
2. **urgentTasks** (최대 5개): 우선순위 high + 마감일 임박 우선, 없으면 빈 배열
3. **insights** (3-5개): 데이터 기반으로 구체적이고 실용적인 내용
4. **recommendations** (3-5개): 즉시 실행 가능한 조언

**중요**:
- 한국어 반말로 친근하게
- 긍정적이고 격려하는 톤 유지
- 통계의 숫자를 그대로 사용할 것 (새로 계산하지 말 것)

이제 분석 결과를 생성해주세요.`

const todayGuidance = `### 4. 오늘의 요약 특화
- 당일 집중도 분석 (남은 시간 고려)
- 남은 할 일의 우선순위 제시
- 오늘 안에 완료 가능한 현실적인 목표 제안
- 내일을 위한 간단한 준비 사항`

const weekGuidance = `### 4. 이번 주 요약 특화
- 주간 패턴 분석 (요일별 생산성)
- 이번 주 성과 요약 및 칭찬
- 다음 주 계획 제안
- 주말 활용 방법 제시`

// buildAnalyzePrompt embeds the locally computed statistics plus the raw
// task list. The model narrates these numbers; it is not a source of
// truth for them.
func buildAnalyzePrompt(todos []ai.TodoSnapshot, period ai.Period, stats analysisStats) string {
	periodLabel := "오늘"
	guidance := todayGuidance
	if period == ai.PeriodWeek {
		periodLabel = "이번 주"
		guidance = weekGuidance
	}

	todosJSON, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		todosJSON = []byte("[]")
	}

	categoryJSON, err := json.Marshal(stats.CategoryCount)
	if err != nil {
		categoryJSON = []byte("{}")
	}

	return fmt.Sprintf(analyzePromptHeader,
		periodLabel,
		string(todosJSON),
		stats.Total,
		stats.Completed,
		stats.CompletionRate,
		stats.Total-stats.Completed,
		stats.HighCount,
		stats.MediumCount,
		stats.LowCount,
		string(categoryJSON),
		stats.Overdue,
		stats.DueToday,
		stats.Morning,
		stats.Afternoon,
		stats.Evening,
		stats.CompletionRate,
		guidance,
	)
}
