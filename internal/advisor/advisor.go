// Package advisor provides AI-backed career advice: conversational guidance,
// skill suggestions for job postings, learning paths, and skill-gap analysis.
// Every operation degrades to a useful non-AI answer when the model is
// unreachable.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperwork/susume/internal/models"
)

// unavailableReply is returned for conversational advice when the model fails.
const unavailableReply = "I apologize, but I'm having trouble connecting right now. Please try again later."

// ContentGenerator produces a text completion for a prompt. Satisfied by the
// Gemini generator; tests use a fake.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GapAnalysis is the result of a skill-gap analysis.
type GapAnalysis struct {
	Analysis      string   `json:"gap_analysis"`
	MissingSkills []string `json:"missing_skills"`
}

// Advisor answers career questions with user-profile context. It holds no
// session state of its own; conversation history lives in the SessionStore
// the caller provides.
type Advisor struct {
	generator ContentGenerator
	sessions  SessionStore
	logger    *zap.Logger
}

// NewAdvisor creates an advisor. sessions may be nil when callers do not need
// multi-turn conversations.
func NewAdvisor(generator ContentGenerator, sessions SessionStore, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{generator: generator, sessions: sessions, logger: logger}
}

// Advise answers a career question. user may be nil; sessionID may be empty
// for one-shot questions. A generator failure is logged and yields a polite
// unavailable reply, never an error.
func (a *Advisor) Advise(ctx context.Context, sessionID, message string, user *models.User) string {
	var b strings.Builder
	b.WriteString(systemContext(user))
	if a.sessions != nil && sessionID != "" {
		for _, turn := range a.sessions.History(sessionID) {
			fmt.Fprintf(&b, "%s: %s\n", roleLabel(turn.Role), turn.Content)
		}
	}
	fmt.Fprintf(&b, "User: %s\nAssistant:", message)

	reply, err := a.generator.GenerateContent(ctx, b.String())
	if err != nil {
		a.logger.Error("career advice generation failed", zap.Error(err))
		return unavailableReply
	}

	if a.sessions != nil && sessionID != "" {
		a.sessions.Append(sessionID,
			Turn{Role: "user", Content: message},
			Turn{Role: "assistant", Content: reply},
		)
	}
	return reply
}

// SuggestSkills asks the model for the most important skills for a job
// posting and returns up to 10. Generator failures yield an empty list.
func (a *Advisor) SuggestSkills(ctx context.Context, jobTitle, jobDescription string) []string {
	prompt := fmt.Sprintf(`Based on this job posting, list the top 10 most important skills needed:

Job Title: %s
Description: %s

Provide only the skill names, one per line.`, jobTitle, jobDescription)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		a.logger.Error("skill suggestion failed", zap.Error(err))
		return nil
	}

	var skills []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if line == "" {
			continue
		}
		skills = append(skills, line)
		if len(skills) == 10 {
			break
		}
	}
	return skills
}

// LearningPath generates a structured plan for moving from current to target
// skills. Generator failures yield a fixed apology string.
func (a *Advisor) LearningPath(ctx context.Context, currentSkills, targetSkills []string) string {
	prompt := fmt.Sprintf(`Create a learning path for someone with these current skills: %s

Who wants to learn these skills: %s

Provide a structured learning plan with recommended sequence and estimated timeline.`,
		strings.Join(currentSkills, ", "), strings.Join(targetSkills, ", "))

	plan, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		a.logger.Error("learning path generation failed", zap.Error(err))
		return "Unable to generate learning path at this time."
	}
	return plan
}

// AnalyzeSkillGap narrates the gap between user skills and missing job skills.
// The missing list is computed by the matching engine and passed in; the model
// only supplies the narrative. On failure the result still carries the
// missing skills with a plain-text analysis.
func (a *Advisor) AnalyzeSkillGap(ctx context.Context, userSkills, jobSkills, missingSkills []string) *GapAnalysis {
	if len(missingSkills) == 0 {
		return &GapAnalysis{Analysis: "You have all the required skills!"}
	}

	prompt := fmt.Sprintf(`A candidate has these skills: %s

A job requires: %s

Provide:
1. Brief analysis of the skill gap
2. Top 3 priority skills to learn first
3. How long it might take to acquire them

Be concise and encouraging.`,
		strings.Join(userSkills, ", "), strings.Join(jobSkills, ", "))

	analysis, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		a.logger.Error("skill gap analysis failed", zap.Error(err))
		return &GapAnalysis{
			Analysis:      fmt.Sprintf("To qualify for this role, focus on: %s.", strings.Join(missingSkills, ", ")),
			MissingSkills: missingSkills,
		}
	}
	return &GapAnalysis{Analysis: analysis, MissingSkills: missingSkills}
}

func roleLabel(role string) string {
	if role == "assistant" {
		return "Assistant"
	}
	return "User"
}

// systemContext builds the advisor persona plus the user's profile context.
func systemContext(user *models.User) string {
	var b strings.Builder
	b.WriteString(`You are an expert career advisor and job recommendation assistant.
Your role is to help users with:
- Career guidance and planning
- Job search strategies
- Skill development recommendations
- Resume and interview tips
- Understanding job market trends

Be encouraging, professional, and provide actionable advice.
`)
	if user == nil {
		return b.String()
	}
	b.WriteString("\nUser Context:\n")
	if len(user.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(user.Skills, ", "))
	}
	if user.ExperienceLevel != "" {
		fmt.Fprintf(&b, "Experience Level: %s\n", user.ExperienceLevel)
	}
	if user.DesiredRole != "" {
		fmt.Fprintf(&b, "Desired Role: %s\n", user.DesiredRole)
	}
	return b.String()
}
