package gemini

import "fmt"

// Запасные ответы на случай недоступности модели. Workflow обязан
// дойти до записи лога и комментария даже без живого ответа модели.
const (
	fallbackFeedback = "AI-сервис ревью временно недоступен. Пожалуйста, попробуйте позже."
	fallbackReport   = "# Не удалось сформировать итоговую оценку.\n\nПожалуйста, попробуйте позже."
)

func buildCodeReviewPrompt(missionDesc, solutionDiff, userDiff string) string {
	return fmt.Sprintf(`You are a Senior Technical Reviewer. Your goal is to review a user's code submission against a "Hidden Solution" for a specific mission.

**Mission Description:**
%s

**Golden Solution Diff (Answer Key):**
%s

**User's Submission Diff:**
%s

**Instructions:**
1. Analyze if the User's submission solves the mission correctly, comparing it to the Golden Solution.
2. If the user's code is correct (functionally equivalent to the solution or better), set "isPassed" to true.
3. If the user's code is incorrect, incomplete, or has critical bugs, set "isPassed" to false.
4. **Feedback Guidelines:**
    - Language: Russian.
    - If "isPassed" is true: Provide a compliment and briefly mention what they did well.
    - If "isPassed" is false: Provide specific hints about what is missing or wrong without revealing the exact code answer. Focus on the concept or logic error.

**Output Format:**
Return ONLY a JSON object in the following format (no markdown code blocks):
{
  "isPassed": boolean,
  "feedback": "string"
}
`, missionDesc, solutionDiff, userDiff)
}

func buildFinalAssessmentPrompt(missionDesc, solutionDiff, userDiff string) string {
	return fmt.Sprintf(`You are a Senior Tech Lead writing a final assessment report for a junior developer who has successfully completed a task.

**Mission Description:**
%s

**Golden Solution Diff:**
%s

**User's Submission Diff:**
%s

**Instructions:**
1. Provide a comprehensive summary of the user's approach compared to the ideal solution.
2. Highlight Pros (Good practices, clean code) and Cons (Potential optimizations, style issues).
3. The tone should be professional and encouraging.
4. **Language: Russian**.
5. Use the following Markdown structure:

# Итоговая оценка кода

## Сильные стороны
- (List pros)

## Слабые стороны
- (List cons)

## Заключение
(Summary paragraph)
`, missionDesc, solutionDiff, userDiff)
}
