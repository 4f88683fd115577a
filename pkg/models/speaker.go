package models

import (
	"strconv"
	"strings"
)

// Speaker identifies who produced an utterance. Fixed roles cover the
// structured protocol; duelogic chairs are "chair_<position>" and informal
// participants are "participant_<n>".
type Speaker string

const (
	SpeakerModerator Speaker = "moderator"
	SpeakerPro       Speaker = "pro"
	SpeakerCon       Speaker = "con"
	SpeakerArbiter   Speaker = "arbiter"
	SpeakerUser      Speaker = "user"
	SpeakerSystem    Speaker = "system"
)

const (
	chairPrefix       = "chair_"
	participantPrefix = "participant_"
)

// ChairSpeaker builds the speaker tag for a duelogic chair position.
// Positions already carrying the chair_ prefix pass through unchanged.
func ChairSpeaker(position string) Speaker {
	if strings.HasPrefix(position, chairPrefix) {
		return Speaker(position)
	}
	return Speaker(chairPrefix + position)
}

// ParticipantSpeaker builds the speaker tag for informal participant n (1-based).
func ParticipantSpeaker(n int) Speaker {
	return Speaker(participantPrefix + strconv.Itoa(n))
}

// IsChair reports whether the speaker is a duelogic chair.
func (s Speaker) IsChair() bool {
	return strings.HasPrefix(string(s), chairPrefix)
}

// IsParticipant reports whether the speaker is an informal participant.
func (s Speaker) IsParticipant() bool {
	return strings.HasPrefix(string(s), participantPrefix)
}

// ChairPosition returns the chair position key for a chair speaker,
// or "" for non-chairs.
func (s Speaker) ChairPosition() string {
	if !s.IsChair() {
		return ""
	}
	return string(s)
}

// IsAgent reports whether the speaker is an LLM-driven agent (anything
// other than user and system).
func (s Speaker) IsAgent() bool {
	return s != SpeakerUser && s != SpeakerSystem && s != ""
}
