package services

import (
	"github.com/debatelab/agora/ent"
	"github.com/debatelab/agora/pkg/models"
)

// toModelDebate maps an Ent row to the domain model the rest of the system
// works with.
func toModelDebate(d *ent.Debate) *models.Debate {
	m := &models.Debate{
		ID:          d.ID,
		Proposition: d.Proposition,
		Context:     d.Context,
		Status:      models.DebateStatus(d.Status),
		Phase:       models.Phase(d.Phase),
		Config:      d.Config,
		CreatedAt:   d.CreatedAt,
		StartedAt:   d.StartedAt,
		CompletedAt: d.CompletedAt,
		PausedMS:    d.PausedMs,
	}
	if d.PreviousPhase != nil {
		m.PreviousPhase = models.Phase(*d.PreviousPhase)
	}
	if d.CurrentSpeaker != nil {
		m.CurrentSpeaker = models.Speaker(*d.CurrentSpeaker)
	}
	if d.ErrorMessage != nil {
		m.ErrorMessage = *d.ErrorMessage
	}
	if d.PodID != nil {
		m.PodID = *d.PodID
	}
	m.LastInteractionAt = d.LastInteractionAt
	return m
}

func toModelDebates(rows []*ent.Debate) []*models.Debate {
	out := make([]*models.Debate, len(rows))
	for i, d := range rows {
		out[i] = toModelDebate(d)
	}
	return out
}

func toModelUtterance(u *ent.Utterance) *models.Utterance {
	return &models.Utterance{
		ID:        u.ID,
		DebateID:  u.DebateID,
		TurnIndex: u.TurnIndex,
		OffsetMS:  u.OffsetMs,
		Phase:     models.Phase(u.Phase),
		Speaker:   models.Speaker(u.Speaker),
		Content:   u.Content,
		Metadata:  u.Metadata,
		CreatedAt: u.CreatedAt,
	}
}

func toModelUtterances(rows []*ent.Utterance) []*models.Utterance {
	out := make([]*models.Utterance, len(rows))
	for i, u := range rows {
		out[i] = toModelUtterance(u)
	}
	return out
}

func toModelIntervention(iv *ent.Intervention) *models.Intervention {
	m := &models.Intervention{
		ID:          iv.ID,
		DebateID:    iv.DebateID,
		Type:        models.InterventionType(iv.Type),
		Content:     iv.Content,
		DirectedTo:  models.Speaker(iv.DirectedTo),
		Status:      models.InterventionStatus(iv.Status),
		Response:    iv.Response,
		CreatedAt:   iv.CreatedAt,
		ProcessedAt: iv.ProcessedAt,
	}
	if iv.ClientKey != nil {
		m.ClientKey = *iv.ClientKey
	}
	return m
}

func toModelInterventions(rows []*ent.Intervention) []*models.Intervention {
	out := make([]*models.Intervention, len(rows))
	for i, iv := range rows {
		out[i] = toModelIntervention(iv)
	}
	return out
}
