package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeakerHelpers(t *testing.T) {
	assert.Equal(t, Speaker("chair_1"), ChairSpeaker("chair_1"))
	assert.Equal(t, Speaker("chair_1"), ChairSpeaker("1"))
	assert.Equal(t, Speaker("participant_3"), ParticipantSpeaker(3))

	assert.True(t, ChairSpeaker("chair_2").IsChair())
	assert.False(t, SpeakerPro.IsChair())
	assert.True(t, ParticipantSpeaker(1).IsParticipant())

	assert.True(t, SpeakerPro.IsAgent())
	assert.True(t, ChairSpeaker("chair_1").IsAgent())
	assert.False(t, SpeakerUser.IsAgent())
	assert.False(t, SpeakerSystem.IsAgent())
}

func TestInterventionStatusAdvance(t *testing.T) {
	assert.True(t, InterventionQueued.CanAdvanceTo(InterventionProcessing))
	assert.True(t, InterventionProcessing.CanAdvanceTo(InterventionCompleted))
	assert.True(t, InterventionProcessing.CanAdvanceTo(InterventionFailed))
	assert.False(t, InterventionCompleted.CanAdvanceTo(InterventionProcessing))
	assert.False(t, InterventionProcessing.CanAdvanceTo(InterventionQueued))
	assert.False(t, InterventionCompleted.CanAdvanceTo(InterventionFailed))
}

func TestInterventionTypeContent(t *testing.T) {
	assert.True(t, InterventionQuestion.RequiresContent())
	assert.True(t, InterventionReassignModel.RequiresContent())
	assert.False(t, InterventionPauseRequest.RequiresContent())
	assert.False(t, InterventionContinue.RequiresContent())
}

func TestPhaseTerminal(t *testing.T) {
	assert.True(t, PhaseCompleted.IsTerminal())
	assert.True(t, PhaseError.IsTerminal())
	assert.False(t, PhasePaused.IsTerminal())
	assert.False(t, Phase("intermission").IsValid())
}
