// Package prompt builds all conversation text sent to debate models. It
// composes persona system messages, debate framing, windowed transcript
// history, and per-turn task instructions. Stateless — all state comes from
// parameters.
package prompt

import (
	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

// taskInstructions maps each prompt kind to its task text. %s placeholders
// are filled by the builder where noted.
var taskInstructions = map[models.PromptKind]string{
	models.PromptOpening: `## Your Task
Deliver your opening statement. Lay out your strongest case for your assigned position. Establish the framing you want the debate to follow. Do not respond to your opponent yet.`,

	models.PromptConstructive: `## Your Task
Deliver a constructive argument advancing your position. Build on your earlier points, introduce new evidence or reasoning, and engage directly with what your opponent has said so far.`,

	models.PromptCrossExamQ: `## Your Task
Cross-examine your opponent. Ask one pointed question that exposes a weakness, inconsistency, or unsupported assumption in their case. Ask the question directly; do not answer it yourself.`,

	models.PromptCrossExamA: `## Your Task
Answer the question you were just asked. Answer it directly and honestly before qualifying or reframing. Concede what must be conceded.`,

	models.PromptRebuttal: `## Your Task
Rebut your opponent's case. Target their strongest arguments, not their weakest. Explain precisely where their reasoning fails and why your position survives their attacks.`,

	models.PromptClosing: `## Your Task
Deliver your closing statement. Summarise why your position prevails, address the strongest point made against you, and leave the audience with your core argument.`,

	models.PromptSynthesis: `## Your Task
As the neutral moderator, synthesise the debate. Summarise the strongest arguments on each side, identify the genuine points of disagreement, and note where the sides found common ground. Do not declare a winner.`,

	models.PromptInterjection: `## Your Task
You are interjecting mid-speech. React briefly and pointedly to what the current speaker just said — the specific claim that prompted you to cut in. Two or three sentences at most; this is an interruption, not a speech.`,

	models.PromptResumption: `## Your Task
You were interrupted mid-speech. Briefly acknowledge the interjection if it deserves it, then complete the argument you were making. Pick up where you left off rather than starting over.`,

	models.PromptExchange: `## Your Task
Continue the exchange from your framework's standpoint. Steel-man the opposing chair's position — state it in its strongest form — before critiquing it, and explicitly acknowledge at least one weakness of your own position.`,

	models.PromptArbiterOpen: `## Your Task
As the arbiter, open this exchange. Introduce the question under debate and the frameworks each chair argues from. Set expectations: chairs must steel-man opposing positions and acknowledge the weaknesses of their own.`,

	models.PromptArbiterClose: `## Your Task
As the arbiter, close the exchange. Assess how faithfully each chair argued from its framework and how honestly the chairs engaged with each other. Do not declare a winner.`,

	models.PromptInformal: `## Your Task
Continue the discussion naturally. Respond to what others have said, bring in your own perspective, and keep the conversation moving. This is a conversation, not a formal debate.`,

	models.PromptWrapup: `## Your Task
Wrap up the discussion. Summarise the main threads, note what the participants converged on, and name the questions left open.`,
}

// violationInstructions maps each violation kind to the arbiter's corrective
// instruction.
var violationInstructions = map[models.ViolationKind]string{
	models.ViolationStrawManning:           "The last speaker misrepresented the opposing position instead of engaging its strongest form. Name the distortion and restate what the opposing chair actually argued.",
	models.ViolationMissingSteelMan:        "The last speaker attacked the opposing position without first presenting it in its strongest form. Require them to steel-man before the exchange continues.",
	models.ViolationMissingSelfCritique:    "The last speaker acknowledged no weakness in their own position. Point out that honest advocacy requires naming where one's own framework strains.",
	models.ViolationFrameworkInconsistency: "The last speaker drifted from their assigned framework. Identify where the argument abandoned its premises.",
	models.ViolationRhetoricalEvasion:      "The last speaker evaded the substance of the question with rhetoric. Redirect them to the actual point.",
}

// toneInstructions maps duelogic tone to a register instruction.
var toneInstructions = map[config.Tone]string{
	config.ToneAcademic:   "Keep an academic register: precise terminology, explicit premises, measured language.",
	config.ToneRespectful: "Keep a respectful register: firm on substance, courteous in address.",
	config.ToneSpirited:   "Keep a spirited register: energetic, direct, willing to press hard on weak points.",
	config.ToneHeated:     "Keep a heated register: sharp, confrontational, though never abusive.",
}

// brevityInstructions indexes verbosity guidance by the 1..5 brevity knob.
var brevityInstructions = [...]string{
	1: "Be extremely terse: two or three sentences.",
	2: "Be brief: one short paragraph.",
	3: "Use moderate length: two or three paragraphs.",
	4: "Develop your points fully: several paragraphs.",
	5: "Be expansive: develop every point thoroughly with examples.",
}

const citationAddendum = `Cite sources for factual claims. Use inline citations of the form [n] matching the provided reference material, or name the source directly when no reference list is given.`

// frameworkDescriptions gives each chair framework its argumentative stance.
var frameworkDescriptions = map[config.Framework]string{
	config.FrameworkUtilitarian:      "You argue from a utilitarian framework: outcomes and aggregate welfare decide the question.",
	config.FrameworkVirtueEthics:     "You argue from virtue ethics: what the choice reveals about and does to character decides the question.",
	config.FrameworkDeontological:    "You argue from a deontological framework: duties, rights, and the impermissibility of certain acts decide the question, whatever the consequences.",
	config.FrameworkPragmatic:        "You argue from a pragmatic framework: what works, what can be implemented, and what experience shows decide the question.",
	config.FrameworkLibertarian:      "You argue from a libertarian framework: individual liberty and the limits of coercion decide the question.",
	config.FrameworkCommunitarian:    "You argue from a communitarian framework: community bonds, shared practices, and social fabric decide the question.",
	config.FrameworkCosmopolitan:     "You argue from a cosmopolitan framework: obligations extend to all persons regardless of borders.",
	config.FrameworkPrecautionary:    "You argue from a precautionary framework: under deep uncertainty, the burden of proof lies with the riskier course.",
	config.FrameworkAutonomyCentered: "You argue from an autonomy-centered framework: the capacity of persons to direct their own lives decides the question.",
	config.FrameworkCareEthics:       "You argue from an ethics of care: concrete relationships and responsibilities of care decide the question.",
}

// rolePresets supply identity text for fixed roles that have no persona
// assignment.
var rolePresets = map[models.Speaker]string{
	models.SpeakerModerator: "You are the neutral moderator of a structured debate. You do not take sides. You keep the exchange fair, surface the strongest version of each argument, and synthesise without adjudicating.",
	models.SpeakerArbiter:   "You are the arbiter of a framework debate. You evaluate how faithfully each chair argues from its assigned framework and how honestly the chairs engage each other: steel-manning, self-critique, intellectual honesty. You enforce the rules of good-faith argument; you never pick a winner.",
	models.SpeakerPro:       "You argue the affirmative side of the proposition. You believe the proposition should be adopted and you argue for it with conviction.",
	models.SpeakerCon:       "You argue the negative side of the proposition. You believe the proposition should be rejected and you argue against it with conviction.",
}

const evaluationSystemPrompt = `You are an impartial debate-quality evaluator. You assess a single utterance from a framework debate for adherence to the principles of good-faith argument.

Score each dimension 0-100 and report booleans exactly as defined:
- "score": overall adherence to debate principles
- "steel_man_attempted": did the speaker restate the opposing position in its strongest form before critiquing it?
- "steel_man_quality": 0-100, quality of that restatement (0 when not attempted)
- "self_critique_attempted": did the speaker acknowledge any weakness of their own position?
- "self_critique_quality": 0-100 (0 when not attempted)
- "framework_consistency": how faithfully the utterance argues from the speaker's assigned framework
- "intellectual_honesty": concessions made where due, no misrepresentation
- "requires_interjection": true when the violation is severe enough that the arbiter should intervene
- "violation": one of "straw_manning", "missing_steel_man", "missing_self_critique", "framework_inconsistency", "rhetorical_evasion", or "" when none

Respond with a single JSON object containing exactly these fields.`

const triggerSystemPrompt = `You judge whether an in-progress debate speech has just given an opponent a strong reason to interrupt. You receive the accumulated partial speech and the candidate interrupters.

Respond with a single JSON object:
- "interrupter": the speaker tag of the best-placed candidate, or "" if none should interrupt
- "trigger": one of "contradiction", "key_phrase", "weak_point", "bold_claim"
- "score": 0.0-1.0, how strongly the latest sentence invites interruption

Only the most recent sentence or two matter; earlier material is context.`
